package parser

import (
	"reflect"
	"testing"

	"nixexpr/internal/ast"
	"nixexpr/internal/token"
)

func TestSetLiteral(t *testing.T) {
	got := parseTree(t,
		tok(token.CurlyBOpen),
		identTok("meaning_of_life"), tok(token.Assign), intTok(42), tok(token.Semicolon),
		identTok("h4x0rnum83r"), tok(token.Assign), valueTok(token.Float(1.337)), tok(token.Semicolon),
		tok(token.CurlyBClose),
	)

	want := ast.TSet{
		Recursive: false,
		Entries: []ast.TSetEntry{
			ast.TAssign{Path: []ast.Tree{ast.TVar{Name: "meaning_of_life"}}, Value: ast.TValue{Value: token.Int(42)}},
			ast.TAssign{Path: []ast.Tree{ast.TVar{Name: "h4x0rnum83r"}}, Value: ast.TValue{Value: token.Float(1.337)}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestSetRecursiveAndEmpty(t *testing.T) {
	got := parseTree(t,
		tok(token.Rec), tok(token.CurlyBOpen),
		identTok("test"), tok(token.Assign), intTok(1), tok(token.Semicolon),
		tok(token.CurlyBClose),
	)
	want := ast.TSet{
		Recursive: true,
		Entries:   []ast.TSetEntry{ast.TAssign{Path: []ast.Tree{ast.TVar{Name: "test"}}, Value: ast.TValue{Value: token.Int(1)}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	empty := parseTree(t, tok(token.CurlyBOpen), tok(token.CurlyBClose))
	if !reflect.DeepEqual(empty, ast.TSet{Recursive: false, Entries: nil}) {
		t.Fatalf("got %#v, want empty non-recursive set", empty)
	}
}

func TestSetDynamicAndInterpolatedKeys(t *testing.T) {
	got := parseTree(t,
		tok(token.CurlyBOpen),

		identTok("a"), tok(token.Dot), stringTok("b"),
		tok(token.Assign), intTok(1), tok(token.Semicolon),

		interpolTok(false, literalPart("c")),
		tok(token.Dot), dynamicTok(identTok("d")),
		tok(token.Assign), intTok(2), tok(token.Semicolon),

		tok(token.CurlyBClose),
	)

	want := ast.TSet{
		Recursive: false,
		Entries: []ast.TSetEntry{
			ast.TAssign{
				Path:  []ast.Tree{ast.TVar{Name: "a"}, ast.TValue{Value: token.String("b")}},
				Value: ast.TValue{Value: token.Int(1)},
			},
			ast.TAssign{
				Path: []ast.Tree{
					ast.TInterpol{Parts: []ast.TInterpolPart{{Literal: "c"}}},
					ast.TDynamic{Inner: ast.TVar{Name: "d"}},
				},
				Value: ast.TValue{Value: token.Int(2)},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestInherit(t *testing.T) {
	got := parseTree(t,
		tok(token.CurlyBOpen),
		identTok("a"), tok(token.Assign), intTok(1), tok(token.Semicolon),
		tok(token.Inherit), identTok("b"), tok(token.Semicolon),
		tok(token.Inherit), tok(token.ParenOpen), identTok("set"), tok(token.ParenClose), identTok("c"), tok(token.Semicolon),
		tok(token.CurlyBClose),
	)

	want := ast.TSet{
		Recursive: false,
		Entries: []ast.TSetEntry{
			ast.TAssign{Path: []ast.Tree{ast.TVar{Name: "a"}}, Value: ast.TValue{Value: token.Int(1)}},
			ast.TInherit{Names: []string{"b"}},
			ast.TInherit{From: ast.TVar{Name: "set"}, Names: []string{"c"}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestMerge(t *testing.T) {
	got := parseTree(t,
		tok(token.CurlyBOpen), identTok("a"), tok(token.Assign), intTok(1), tok(token.Semicolon), tok(token.CurlyBClose),
		tok(token.Merge),
		tok(token.CurlyBOpen), identTok("b"), tok(token.Assign), intTok(2), tok(token.Semicolon), tok(token.CurlyBClose),
	)

	want := ast.TOperation{
		Lhs: ast.TSet{Entries: []ast.TSetEntry{ast.TAssign{Path: []ast.Tree{ast.TVar{Name: "a"}}, Value: ast.TValue{Value: token.Int(1)}}}},
		Op:  ast.OpMerge,
		Rhs: ast.TSet{Entries: []ast.TSetEntry{ast.TAssign{Path: []ast.Tree{ast.TVar{Name: "b"}}, Value: ast.TValue{Value: token.Int(2)}}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}
