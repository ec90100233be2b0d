package parser

import (
	"reflect"
	"testing"

	"nixexpr/internal/ast"
	"nixexpr/internal/parseerr"
	"nixexpr/internal/token"
)

func TestPatternWithDefault(t *testing.T) {
	// { a, b ? 1 }: a
	got := parseTree(t,
		tok(token.CurlyBOpen),
		identTok("a"), tok(token.Comma),
		identTok("b"), tok(token.Question), intTok(1),
		tok(token.CurlyBClose), tok(token.Colon),
		identTok("a"),
	)
	want := ast.TLambda{
		Arg: ast.TPatternArg{Entries: []ast.TPatEntry{
			{Name: "a"},
			{Name: "b", Default: ast.TValue{Value: token.Int(1)}},
		}},
		Body: ast.TVar{Name: "a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestPatternEllipsisAndTrailingBind(t *testing.T) {
	// { a, ... }@outer: a
	got := parseTree(t,
		tok(token.CurlyBOpen),
		identTok("a"), tok(token.Comma),
		tok(token.Ellipsis),
		tok(token.CurlyBClose), tok(token.At), identTok("outer"), tok(token.Colon),
		identTok("a"),
	)
	outer := "outer"
	want := ast.TLambda{
		Arg: ast.TPatternArg{
			Entries:  []ast.TPatEntry{{Name: "a"}},
			Ellipsis: true,
			Bind:     &outer,
		},
		Body: ast.TVar{Name: "a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestPatternLeadingBind(t *testing.T) {
	// outer@{a}: a
	got := parseTree(t,
		identTok("outer"), tok(token.At), tok(token.CurlyBOpen),
		identTok("a"),
		tok(token.CurlyBClose), tok(token.Colon),
		identTok("a"),
	)
	outer := "outer"
	want := ast.TLambda{
		Arg: ast.TPatternArg{
			Entries: []ast.TPatEntry{{Name: "a"}},
			Bind:    &outer,
		},
		Body: ast.TVar{Name: "a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestPatternDefaultIsEmptySet(t *testing.T) {
	// { a ? {} }: a
	got := parseTree(t,
		tok(token.CurlyBOpen),
		identTok("a"), tok(token.Question), tok(token.CurlyBOpen), tok(token.CurlyBClose),
		tok(token.CurlyBClose), tok(token.Colon),
		identTok("a"),
	)
	want := ast.TLambda{
		Arg:  ast.TPatternArg{Entries: []ast.TPatEntry{{Name: "a", Default: ast.TSet{}}}},
		Body: ast.TVar{Name: "a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestEmptyPatternForms(t *testing.T) {
	got := parseTree(t, tok(token.CurlyBOpen), tok(token.CurlyBClose), tok(token.Colon), intTok(1))
	want := ast.TLambda{Arg: ast.TPatternArg{}, Body: ast.TValue{Value: token.Int(1)}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	outer := "outer"
	got = parseTree(t, tok(token.CurlyBOpen), tok(token.CurlyBClose), tok(token.At), identTok("outer"), tok(token.Colon), intTok(1))
	want = ast.TLambda{Arg: ast.TPatternArg{Bind: &outer}, Body: ast.TValue{Value: token.Int(1)}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	got = parseTree(t, tok(token.CurlyBOpen), tok(token.Ellipsis), tok(token.CurlyBClose), tok(token.Colon), intTok(1))
	want = ast.TLambda{Arg: ast.TPatternArg{Ellipsis: true}, Body: ast.TValue{Value: token.Int(1)}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestPatternDoubleBindIsAlreadyBoundError(t *testing.T) {
	// x@{}@y: x
	err := parseErr(t,
		identTok("x"), tok(token.At), tok(token.CurlyBOpen), tok(token.CurlyBClose),
		tok(token.At), identTok("y"), tok(token.Colon), identTok("x"),
	)
	perr, ok := err.(*parseerr.Error)
	if !ok {
		t.Fatalf("expected *parseerr.Error, got %T: %v", err, err)
	}
	if perr.Kind != parseerr.AlreadyBound {
		t.Fatalf("got error kind %v, want AlreadyBound", perr.Kind)
	}
}
