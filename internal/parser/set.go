package parser

import (
	"nixexpr/internal/ast"
	"nixexpr/internal/token"
)

// parseSet parses set-body entries until it sees until, consuming the
// terminator itself before returning. until is CurlyBClose for set literals
// and legacy let-bodies, or In for "let ... in".
func (p *Parser) parseSet(until token.Kind) (token.Meta, []ast.SetEntry, error) {
	var entries []ast.SetEntry
	for {
		kind := p.peek()
		if kind == until {
			break
		}

		if kind == token.Inherit {
			entry, err := p.parseInherit()
			if err != nil {
				return token.Meta{}, nil, err
			}
			entries = append(entries, entry)
			continue
		}

		path, err := p.parseAttr()
		if err != nil {
			return token.Meta{}, nil, err
		}
		assign, err := p.expect(token.Assign)
		if err != nil {
			return token.Meta{}, nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return token.Meta{}, nil, err
		}
		semi, err := p.expect(token.Semicolon)
		if err != nil {
			return token.Meta{}, nil, err
		}
		entries = append(entries, ast.AssignEntry{Path: path, Assign: assign, Value: p.insert(value), Semi: semi})
	}

	end, err := p.next() // won't break out of the loop above until reached
	if err != nil {
		return token.Meta{}, nil, err
	}
	return end.Meta, entries, nil
}

// parseInherit parses "inherit [(from)] ident*;".
func (p *Parser) parseInherit() (ast.SetEntry, error) {
	inheritPair, err := p.next()
	if err != nil {
		return nil, err
	}

	var from *ast.Parens
	if p.peek() == token.ParenOpen {
		openPair, err := p.next()
		if err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		close, err := p.expect(token.ParenClose)
		if err != nil {
			return nil, err
		}
		from = &ast.Parens{Open: openPair.Meta, Inner: p.insert(inner), Close: close}
	}

	var idents []ast.IdentRef
	for p.peek() == token.Ident {
		meta, name, err := p.nextIdent()
		if err != nil {
			return nil, err
		}
		idents = append(idents, ast.IdentRef{Meta: meta, Name: name})
	}

	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}

	return ast.InheritEntry{Inherit: inheritPair.Meta, From: from, Idents: idents, Semi: semi}, nil
}
