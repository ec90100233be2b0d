package parser

import (
	"nixexpr/internal/ast"
	"nixexpr/internal/parseerr"
	"nixexpr/internal/token"
)

// parseVal parses one atom, plus any attribute-access postfix that follows
// it ("a.b", "a.b or default"), chaining left so "a.b.c" nests as
// IndexSet(IndexSet(a, b), c).
func (p *Parser) parseVal() (ast.Node, error) {
	val, err := p.parseAtom()
	if err != nil {
		return ast.Node{}, err
	}

	for p.peek() == token.Dot {
		dotPair, err := p.next()
		if err != nil {
			return ast.Node{}, err
		}
		attr, err := p.nextAttr()
		if err != nil {
			return ast.Node{}, err
		}

		if pair, ok := p.peekMeta(); ok && pair.Token.Kind == token.Ident && pair.Token.Text == orIdent {
			orPair, err := p.next()
			if err != nil {
				return ast.Node{}, err
			}
			def, err := p.parseVal()
			if err != nil {
				return ast.Node{}, err
			}
			setID := p.insert(val)
			attrID := p.insert(attr)
			defID := p.insert(def)
			// Span deliberately covers set..attr only, not default — see
			// DESIGN.md's note on the preserved OrDefault span quirk.
			val = ast.Node{
				Span: val.Span.Until(attr.Span),
				Type: ast.OrDefaultNode{Set: setID, Dot: dotPair.Meta, Attr: attrID, Or: orPair.Meta, Default: defID},
			}
		} else {
			setID := p.insert(val)
			attrID := p.insert(attr)
			val = ast.Node{
				Span: val.Span.Until(attr.Span),
				Type: ast.IndexSetNode{Set: setID, Dot: dotPair.Meta, Attr: attrID},
			}
		}
	}
	return val, nil
}

// parseAtom parses a single atom with no postfix handling.
func (p *Parser) parseAtom() (ast.Node, error) {
	pair, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}

	switch pair.Token.Kind {
	case token.ParenOpen:
		inner, err := p.parseExpr()
		if err != nil {
			return ast.Node{}, err
		}
		close, err := p.expect(token.ParenClose)
		if err != nil {
			return ast.Node{}, err
		}
		return ast.Node{
			Span: pair.Meta.Span.Until(close.Span),
			Type: ast.ParensNode{Open: pair.Meta, Inner: p.insert(inner), Close: close},
		}, nil

	case token.Import:
		// Import takes exactly one atom, not a full expression — that's
		// what makes "import p {}" parse as Apply(Import(p), {}) rather
		// than Import(Apply(p, {})).
		target, err := p.parseVal()
		if err != nil {
			return ast.Node{}, err
		}
		return ast.Node{
			Span: pair.Meta.Span.Until(target.Span),
			Type: ast.ImportNode{ImportMeta: pair.Meta, Target: p.insert(target)},
		}, nil

	case token.Rec:
		open, err := p.expect(token.CurlyBOpen)
		if err != nil {
			return ast.Node{}, err
		}
		close, entries, err := p.parseSet(token.CurlyBClose)
		if err != nil {
			return ast.Node{}, err
		}
		recMeta := pair.Meta
		return ast.Node{
			Span: pair.Meta.Span.Until(close.Span),
			Type: ast.SetNode{Recursive: &recMeta, Open: open, Entries: entries, Close: close},
		}, nil

	case token.CurlyBOpen:
		return p.parseSetOrPattern(pair.Meta)

	case token.SquareBOpen:
		var items []ast.NodeId
		for {
			kind := p.peek()
			if kind == token.EOF || kind == token.SquareBClose {
				break
			}
			// List elements use parseVal, not parseFn — "[ f x ]" is two
			// elements, not one application.
			item, err := p.parseVal()
			if err != nil {
				return ast.Node{}, err
			}
			items = append(items, p.insert(item))
		}
		close, err := p.expect(token.SquareBClose)
		if err != nil {
			return ast.Node{}, err
		}
		return ast.Node{
			Span: pair.Meta.Span.Until(close.Span),
			Type: ast.ListNode{Open: pair.Meta, Items: items, Close: close},
		}, nil

	case token.Dynamic:
		inner, err := p.parseBranch(pair.Token.Nested)
		if err != nil {
			return ast.Node{}, err
		}
		return ast.Node{
			Span: pair.Meta.Span,
			Type: ast.DynamicNode{Meta: pair.Meta, Inner: p.insert(inner), Close: pair.Token.Close},
		}, nil

	case token.Value:
		return ast.Node{Span: pair.Meta.Span, Type: ast.ValueNode{Meta: pair.Meta, Value: pair.Token.Value}}, nil

	case token.Ident:
		if p.peek() == token.At {
			atPair, err := p.next()
			if err != nil {
				return ast.Node{}, err
			}
			open, err := p.expect(token.CurlyBOpen)
			if err != nil {
				return ast.Node{}, err
			}
			bind := &ast.PatternBind{
				Before: true,
				Span:   pair.Meta.Span.Until(atPair.Meta.Span),
				At:     atPair.Meta,
				Ident:  pair.Meta,
				Name:   pair.Token.Text,
			}
			return p.parsePattern(open, bind)
		}
		return ast.Node{Span: pair.Meta.Span, Type: ast.VarNode{Meta: pair.Meta, Name: pair.Token.Text}}, nil

	case token.Interpol:
		return p.parseInterpol(pair.Meta, pair.Token.Multiline, pair.Token.Parts)

	default:
		return ast.Node{}, parseerr.NewUnexpected(pair.Token.Kind, pair.Meta.Span)
	}
}

// parseSetOrPattern resolves the set-vs-lambda-pattern ambiguity at "{":
// consume one token into a temporary, peek one more, and decide from the
// (temp, peek) pair before putting the temporary back.
func (p *Parser) parseSetOrPattern(open token.Meta) (ast.Node, error) {
	temp, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}
	peekKind := p.peek()

	isPattern := false
	switch temp.Token.Kind {
	case token.Ident:
		isPattern = peekKind == token.Comma || peekKind == token.Question || peekKind == token.CurlyBClose
	case token.Ellipsis:
		isPattern = peekKind == token.CurlyBClose
	case token.CurlyBClose:
		isPattern = peekKind == token.Colon || peekKind == token.At
	}

	p.push(temp)

	if isPattern {
		return p.parsePattern(open, nil)
	}

	close, entries, err := p.parseSet(token.CurlyBClose)
	if err != nil {
		return ast.Node{}, err
	}
	return ast.Node{
		Span: open.Span.Until(close.Span),
		Type: ast.SetNode{Recursive: nil, Open: open, Entries: entries, Close: close},
	}, nil
}
