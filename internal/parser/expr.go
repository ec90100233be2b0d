package parser

import (
	"nixexpr/internal/ast"
	"nixexpr/internal/token"
)

// parseExpr is the top entry point: it dispatches on the let/with/if/assert
// forms, and otherwise falls through to the precedence ladder, inspecting
// the result afterward for the bare "ident: body" lambda rewrite.
func (p *Parser) parseExpr() (ast.Node, error) {
	switch p.peek() {
	case token.Let:
		return p.parseLet()
	case token.With:
		return p.parseWith()
	case token.If:
		return p.parseIf()
	case token.Assert:
		return p.parseAssert()
	default:
		return p.parseBareLambdaOrMath()
	}
}

// parseLet handles both "let a = ...; in body" and the legacy
// "let { a = ...; }" form, distinguished by whether "{" follows "let"
// directly.
func (p *Parser) parseLet() (ast.Node, error) {
	letPair, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}

	if p.peek() == token.CurlyBOpen {
		openPair, err := p.next()
		if err != nil {
			return ast.Node{}, err
		}
		close, entries, err := p.parseSet(token.CurlyBClose)
		if err != nil {
			return ast.Node{}, err
		}
		return ast.Node{
			Span: letPair.Meta.Span.Until(close.Span),
			Type: ast.LetNode{LetMeta: letPair.Meta, Open: openPair.Meta, Entries: entries, Close: close},
		}, nil
	}

	inMeta, entries, err := p.parseSet(token.In)
	if err != nil {
		return ast.Node{}, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.Node{
		Span: letPair.Meta.Span.Until(body.Span),
		Type: ast.LetInNode{LetMeta: letPair.Meta, Entries: entries, InMeta: inMeta, Body: p.insert(body)},
	}, nil
}

func (p *Parser) parseWith() (ast.Node, error) {
	withPair, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}
	env, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return ast.Node{}, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.Node{
		Span: withPair.Meta.Span.Until(body.Span),
		Type: ast.WithNode{WithMeta: withPair.Meta, Env: p.insert(env), SemiMeta: semi, Body: p.insert(body)},
	}, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	ifPair, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	thenMeta, err := p.expect(token.Then)
	if err != nil {
		return ast.Node{}, err
	}
	thenBody, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	elseMeta, err := p.expect(token.Else)
	if err != nil {
		return ast.Node{}, err
	}
	elseBody, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.Node{
		Span: ifPair.Meta.Span.Until(elseBody.Span),
		Type: ast.IfElseNode{
			IfMeta:    ifPair.Meta,
			Condition: p.insert(cond),
			ThenMeta:  thenMeta,
			ThenBody:  p.insert(thenBody),
			ElseMeta:  elseMeta,
			ElseBody:  p.insert(elseBody),
		},
	}, nil
}

func (p *Parser) parseAssert() (ast.Node, error) {
	assertPair, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return ast.Node{}, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.Node{
		Span: assertPair.Meta.Span.Until(body.Span),
		Type: ast.AssertNode{AssertMeta: assertPair.Meta, Cond: p.insert(cond), SemiMeta: semi, Body: p.insert(body)},
	}, nil
}

// parseBareLambdaOrMath runs the precedence ladder, then checks whether the
// result is exactly a bare variable immediately followed by ":" — in which
// case it is rewritten into a single-identifier lambda. This inspection is
// why parseExpr can't simply delegate straight to parseMath.
func (p *Parser) parseBareLambdaOrMath() (ast.Node, error) {
	val, err := p.parseMath()
	if err != nil {
		return ast.Node{}, err
	}

	v, ok := val.Type.(ast.VarNode)
	if !ok || p.peek() != token.Colon {
		return val, nil
	}

	colonPair, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.Node{
		Span: val.Span.Until(body.Span),
		Type: ast.LambdaNode{Arg: ast.IdentArg{Meta: v.Meta, Name: v.Name}, Colon: colonPair.Meta, Body: p.insert(body)},
	}, nil
}
