package parser

import (
	"nixexpr/internal/ast"
	"nixexpr/internal/parseerr"
	"nixexpr/internal/token"
)

// nextAttr consumes one token and turns it into a single attribute-path
// segment: an identifier, a literal value, a dynamic "${...}", or an
// interpolated string.
func (p *Parser) nextAttr() (ast.Node, error) {
	pair, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}
	switch pair.Token.Kind {
	case token.Ident:
		return ast.Node{Span: pair.Meta.Span, Type: ast.VarNode{Meta: pair.Meta, Name: pair.Token.Text}}, nil
	case token.Value:
		return ast.Node{Span: pair.Meta.Span, Type: ast.ValueNode{Meta: pair.Meta, Value: pair.Token.Value}}, nil
	case token.Dynamic:
		inner, err := p.parseBranch(pair.Token.Nested)
		if err != nil {
			return ast.Node{}, err
		}
		return ast.Node{
			Span: pair.Meta.Span,
			Type: ast.DynamicNode{Meta: pair.Meta, Inner: p.insert(inner), Close: pair.Token.Close},
		}, nil
	case token.Interpol:
		return p.parseInterpol(pair.Meta, pair.Token.Multiline, pair.Token.Parts)
	default:
		return ast.Node{}, parseerr.NewExpectedType("attribute", pair.Token.Kind, pair.Meta.Span)
	}
}

// parseAttr collects one or more dot-separated attribute-path segments. The
// last segment's separator is nil.
func (p *Parser) parseAttr() (ast.Attribute, error) {
	path := make(ast.Attribute, 0, 1)
	for {
		attr, err := p.nextAttr()
		if err != nil {
			return nil, err
		}
		attrID := p.insert(attr)

		if p.peek() == token.Dot {
			dotPair, err := p.next()
			if err != nil {
				return nil, err
			}
			dot := dotPair.Meta
			path = append(path, ast.AttrSegment{Node: attrID, Dot: &dot})
			continue
		}
		path = append(path, ast.AttrSegment{Node: attrID, Dot: nil})
		break
	}
	return path, nil
}

// nextIdent consumes one token, requiring it to be an identifier.
func (p *Parser) nextIdent() (token.Meta, string, error) {
	pair, err := p.next()
	if err != nil {
		return token.Meta{}, "", err
	}
	if pair.Token.Kind != token.Ident {
		return token.Meta{}, "", parseerr.NewExpectedType("ident", pair.Token.Kind, pair.Meta.Span)
	}
	return pair.Meta, pair.Token.Text, nil
}

// parseInterpol turns a tokenizer-level interpolated string into its AST
// form: literal runs stay literal, each nested token slice is parsed as a
// sub-expression sharing this parser's arena.
func (p *Parser) parseInterpol(meta token.Meta, multiline bool, parts []token.InterpolPart) (ast.Node, error) {
	out := make([]ast.InterpolPart, len(parts))
	for i, part := range parts {
		if !part.IsTokens {
			out[i] = ast.InterpolPart{Literal: part.Literal}
			continue
		}
		sub, err := p.parseBranch(part.Tokens)
		if err != nil {
			return ast.Node{}, err
		}
		out[i] = ast.InterpolPart{IsExpr: true, Expr: p.insert(sub), Close: part.Close}
	}
	return ast.Node{
		Span: meta.Span,
		Type: ast.InterpolNode{Meta: meta, Multiline: multiline, Parts: out},
	}, nil
}
