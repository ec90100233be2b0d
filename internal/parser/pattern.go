package parser

import (
	"nixexpr/internal/ast"
	"nixexpr/internal/parseerr"
	"nixexpr/internal/token"
)

// parsePattern parses a destructuring lambda pattern body after its opening
// "{". bind is non-nil when the caller already committed to a leading
// "name@{" form; a trailing "{...}@name" form is detected and bound inside
// this function instead.
func (p *Parser) parsePattern(open token.Meta, bind *ast.PatternBind) (ast.Node, error) {
	start := open.Span
	if bind != nil {
		start = bind.Span
	}

	var entries []ast.PatEntry
	var ellipsis *token.Meta
	for {
		kind := p.peek()
		if kind == token.Ellipsis {
			pair, err := p.next()
			if err != nil {
				return ast.Node{}, err
			}
			meta := pair.Meta
			ellipsis = &meta
			break
		}
		if kind == token.CurlyBClose {
			break
		}

		ident, name, err := p.nextIdent()
		if err != nil {
			return ast.Node{}, err
		}

		var def *ast.PatDefault
		if p.peek() == token.Question {
			qPair, err := p.next()
			if err != nil {
				return ast.Node{}, err
			}
			value, err := p.parseExpr()
			if err != nil {
				return ast.Node{}, err
			}
			def = &ast.PatDefault{Question: qPair.Meta, Value: p.insert(value)}
		}

		var comma *token.Meta
		if p.peek() == token.Comma {
			cPair, err := p.next()
			if err != nil {
				return ast.Node{}, err
			}
			meta := cPair.Meta
			comma = &meta
		}

		entries = append(entries, ast.PatEntry{Ident: ident, Name: name, Default: def, Comma: comma})
		if comma == nil {
			// No comma means this was the last entry (§3 invariant).
			break
		}
	}

	close, err := p.expect(token.CurlyBClose)
	if err != nil {
		return ast.Node{}, err
	}

	if p.peek() == token.At {
		atPair, err := p.next()
		if err != nil {
			return ast.Node{}, err
		}
		if bind != nil {
			return ast.Node{}, parseerr.NewAlreadyBound(atPair.Meta.Span)
		}
		ident, name, err := p.nextIdent()
		if err != nil {
			return ast.Node{}, err
		}
		bind = &ast.PatternBind{
			Before: false,
			Span:   atPair.Meta.Span.Until(ident.Span),
			At:     atPair.Meta,
			Ident:  ident,
			Name:   name,
		}
	}

	colon, err := p.expect(token.Colon)
	if err != nil {
		return ast.Node{}, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}

	return ast.Node{
		Span: start.Until(body.Span),
		Type: ast.LambdaNode{
			Arg:   ast.PatternArg{Open: open, Entries: entries, Close: close, Bind: bind, Ellipsis: ellipsis},
			Colon: colon,
			Body:  p.insert(body),
		},
	}, nil
}
