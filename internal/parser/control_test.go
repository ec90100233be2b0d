package parser

import (
	"reflect"
	"testing"

	"nixexpr/internal/ast"
	"nixexpr/internal/token"
)

func TestLetIn(t *testing.T) {
	got := parseTree(t,
		tok(token.Let),
		identTok("x"), tok(token.Assign), intTok(1), tok(token.Semicolon),
		tok(token.In),
		identTok("x"),
	)
	want := ast.TLetIn{
		Entries: []ast.TSetEntry{ast.TAssign{Path: []ast.Tree{ast.TVar{Name: "x"}}, Value: ast.TValue{Value: token.Int(1)}}},
		Body:    ast.TVar{Name: "x"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestLetLegacySyntax(t *testing.T) {
	got := parseTree(t,
		tok(token.Let), tok(token.CurlyBOpen),
		identTok("body"), tok(token.Assign), intTok(1), tok(token.Semicolon),
		tok(token.CurlyBClose),
	)
	want := ast.TLet{
		Entries: []ast.TSetEntry{ast.TAssign{Path: []ast.Tree{ast.TVar{Name: "body"}}, Value: ast.TValue{Value: token.Int(1)}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestWith(t *testing.T) {
	got := parseTree(t,
		tok(token.With), identTok("pkgs"), tok(token.Semicolon),
		identTok("hello"),
	)
	want := ast.TWith{Env: ast.TVar{Name: "pkgs"}, Body: ast.TVar{Name: "hello"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestAssert(t *testing.T) {
	got := parseTree(t,
		tok(token.Assert), boolTok(true), tok(token.Semicolon),
		intTok(1),
	)
	want := ast.TAssert{Cond: ast.TValue{Value: token.Bool(true)}, Body: ast.TValue{Value: token.Int(1)}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestImportAsAtom(t *testing.T) {
	// "import p {}" -> Apply(Import(p), {}), not Import(Apply(p, {})).
	got := parseTree(t,
		tok(token.Import), identTok("p"),
		tok(token.CurlyBOpen), tok(token.CurlyBClose),
	)
	want := ast.TApply{
		Fn:  ast.TImport{Target: ast.TVar{Name: "p"}},
		Arg: ast.TSet{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParens(t *testing.T) {
	got := parseTree(t, tok(token.ParenOpen), intTok(1), tok(token.ParenClose))
	want := ast.TParens{Inner: ast.TValue{Value: token.Int(1)}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}
