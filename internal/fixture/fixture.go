// Package fixture loads table-driven end-to-end parse scenarios from
// testdata/*.toml, the way internal/project parses surge.toml's [modules]
// and [package] sections in the teacher repo — repurposed here from project
// manifests to test scenarios so the larger cases in spec.md §8 are data,
// not Go literal tables.
package fixture

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"nixexpr/internal/token"
)

// Case is one end-to-end scenario: a token stream to parse and the
// rendered s-expression the parse is expected to produce (see
// internal/snapshot.Render).
type Case struct {
	Name   string   `toml:"name"`
	Tokens []string `toml:"tokens"`
	Expect string   `toml:"expect"`
}

type fixtureFile struct {
	Case []Case `toml:"case"`
}

// LoadFile parses every [[case]] entry out of a scenario file.
func LoadFile(path string) ([]Case, error) {
	var f fixtureFile
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("case") {
		return nil, fmt.Errorf("%s: no [[case]] entries defined", path)
	}
	for i, c := range f.Case {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%s: case %d missing a name", path, i)
		}
	}
	return f.Case, nil
}

// ParsedTokens parses this case's mini-language token specs into real
// token.Pair values ready for parser.Parse.
func (c Case) ParsedTokens() ([]token.Pair, error) {
	return ParseTokens(c.Tokens)
}
