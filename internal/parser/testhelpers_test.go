package parser

import (
	"testing"

	"nixexpr/internal/ast"
	"nixexpr/internal/token"
)

// The helpers below build bare token.Pair values with zero Meta — these
// tests exercise tree shape, not span bookkeeping (that's meta_test.go's
// job), so giving every token an identical empty Meta keeps the fixtures
// readable.

func tok(kind token.Kind) token.Pair {
	return token.Pair{Token: token.Token{Kind: kind}}
}

func identTok(name string) token.Pair {
	return token.Pair{Token: token.Token{Kind: token.Ident, Text: name}}
}

func valueTok(v token.Value) token.Pair {
	return token.Pair{Token: token.Token{Kind: token.Value, Value: v}}
}

func intTok(v int64) token.Pair      { return valueTok(token.Int(v)) }
func boolTok(v bool) token.Pair      { return valueTok(token.Bool(v)) }
func stringTok(v string) token.Pair  { return valueTok(token.String(v)) }

func dynamicTok(nested ...token.Pair) token.Pair {
	return token.Pair{Token: token.Token{Kind: token.Dynamic, Nested: nested}}
}

func interpolTok(multiline bool, parts ...token.InterpolPart) token.Pair {
	return token.Pair{Token: token.Token{Kind: token.Interpol, Multiline: multiline, Parts: parts}}
}

func literalPart(s string) token.InterpolPart {
	return token.InterpolPart{Literal: s}
}

func tokensPart(tokens ...token.Pair) token.InterpolPart {
	return token.InterpolPart{IsTokens: true, Tokens: tokens}
}

// parseTree parses tokens and converts the result straight to its concrete
// Tree form, failing the test on any parse error.
func parseTree(t *testing.T, tokens ...token.Pair) ast.Tree {
	t.Helper()
	result, err := Parse(tokens)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return ast.ToTree(result.Arena, result.Arena.Insert(result.Root))
}

// parseErr parses tokens and requires it to fail, returning the error.
func parseErr(t *testing.T, tokens ...token.Pair) error {
	t.Helper()
	_, err := Parse(tokens)
	if err == nil {
		t.Fatal("expected a parse error, got none")
	}
	return err
}
