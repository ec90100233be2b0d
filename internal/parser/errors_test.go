package parser

import (
	"testing"

	"nixexpr/internal/parseerr"
	"nixexpr/internal/token"
)

func TestStraySemicolonInSetBodyIsExpectedType(t *testing.T) {
	// { ; } has nothing attribute-shaped before the "=", so the set body
	// parser rejects the bare ";" as not an attribute.
	err := parseErr(t, tok(token.CurlyBOpen), tok(token.Semicolon), tok(token.CurlyBClose))
	perr, ok := err.(*parseerr.Error)
	if !ok {
		t.Fatalf("expected *parseerr.Error, got %T: %v", err, err)
	}
	if perr.Kind != parseerr.ExpectedType {
		t.Fatalf("got error kind %v, want ExpectedType", perr.Kind)
	}
	if perr.WantCategory != "attribute" {
		t.Fatalf("got category %q, want %q", perr.WantCategory, "attribute")
	}
}

func TestUnexpectedEOFMidExpression(t *testing.T) {
	err := parseErr(t, identTok("a"), tok(token.Add))
	perr, ok := err.(*parseerr.Error)
	if !ok {
		t.Fatalf("expected *parseerr.Error, got %T: %v", err, err)
	}
	if perr.Kind != parseerr.UnexpectedEOF {
		t.Fatalf("got error kind %v, want UnexpectedEOF", perr.Kind)
	}
}

func TestExpectedTokenMismatch(t *testing.T) {
	// "if true then 1" with no "else" at all: runs out of input while
	// expecting the "else" keyword.
	err := parseErr(t, tok(token.If), boolTok(true), tok(token.Then), intTok(1))
	perr, ok := err.(*parseerr.Error)
	if !ok {
		t.Fatalf("expected *parseerr.Error, got %T: %v", err, err)
	}
	if perr.Kind != parseerr.Expected {
		t.Fatalf("got error kind %v, want Expected", perr.Kind)
	}
	if perr.WantKind != token.Else {
		t.Fatalf("got want-kind %v, want Else", perr.WantKind)
	}
	if perr.Found.Valid {
		t.Fatalf("expected Found to be invalid (ran out at EOF), got %+v", perr.Found)
	}
}

func TestUnexpectedTokenAsAtom(t *testing.T) {
	// A bare ";" can never start an atom.
	err := parseErr(t, tok(token.Semicolon))
	perr, ok := err.(*parseerr.Error)
	if !ok {
		t.Fatalf("expected *parseerr.Error, got %T: %v", err, err)
	}
	if perr.Kind != parseerr.Unexpected {
		t.Fatalf("got error kind %v, want Unexpected", perr.Kind)
	}
	if perr.GotKind != token.Semicolon {
		t.Fatalf("got GotKind %v, want Semicolon", perr.GotKind)
	}
}
