package fixture

import (
	"testing"

	"nixexpr/internal/token"
)

func TestLoadFile(t *testing.T) {
	cases, err := LoadFile("testdata/sample.toml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(cases))
	}
	if cases[0].Name != "simple_add" {
		t.Fatalf("got name %q, want simple_add", cases[0].Name)
	}
}

func TestLoadFileMissingFile(t *testing.T) {
	_, err := LoadFile("testdata/does_not_exist.toml")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParsedTokens(t *testing.T) {
	cases, err := LoadFile("testdata/sample.toml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	tokens, err := cases[0].ParsedTokens()
	if err != nil {
		t.Fatalf("ParsedTokens: %v", err)
	}
	want := []token.Pair{
		{Token: token.Token{Kind: token.Value, Value: token.Int(1)}},
		{Token: token.Token{Kind: token.Add}},
		{Token: token.Token{Kind: token.Value, Value: token.Int(2)}},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i := range tokens {
		if tokens[i].Token.Kind != want[i].Token.Kind || tokens[i].Token.Value != want[i].Token.Value {
			t.Fatalf("token %d: got %+v, want %+v", i, tokens[i].Token, want[i].Token)
		}
	}
}

func TestParseTokenSpecRejectsUnknownKind(t *testing.T) {
	if _, err := ParseTokenSpec("NotAKind"); err == nil {
		t.Fatal("expected an error for an unknown kind name")
	}
}

func TestParseTokenSpecRejectsBadValuePayload(t *testing.T) {
	if _, err := ParseTokenSpec("Value.Int:not-a-number"); err == nil {
		t.Fatal("expected an error for a malformed int payload")
	}
}
