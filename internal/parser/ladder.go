package parser

import (
	"nixexpr/internal/ast"
	"nixexpr/internal/token"
)

// The precedence ladder, outermost to tightest. Each level delegates to the
// next; parseMath is the single entry parseExpr falls through to once none
// of its own top-level forms match.

func (p *Parser) parseMath() (ast.Node, error) {
	return p.parseImplication()
}

func (p *Parser) parseImplication() (ast.Node, error) {
	return p.foldBinary(p.parseOr, false, []binOp{
		{token.Implication, ast.OpImplication},
	})
}

func (p *Parser) parseOr() (ast.Node, error) {
	return p.foldBinary(p.parseAnd, false, []binOp{
		{token.Or, ast.OpOr},
	})
}

func (p *Parser) parseAnd() (ast.Node, error) {
	return p.foldBinary(p.parseEqual, false, []binOp{
		{token.And, ast.OpAnd},
	})
}

// parseEqual and parseCompare are non-associative: at most one operator is
// consumed at this level.
func (p *Parser) parseEqual() (ast.Node, error) {
	return p.foldBinary(p.parseCompare, true, []binOp{
		{token.Equal, ast.OpEqual},
		{token.NotEqual, ast.OpNotEqual},
	})
}

func (p *Parser) parseCompare() (ast.Node, error) {
	return p.foldBinary(p.parseMerge, true, []binOp{
		{token.Less, ast.OpLess},
		{token.LessOrEq, ast.OpLessOrEq},
		{token.More, ast.OpMore},
		{token.MoreOrEq, ast.OpMoreOrEq},
	})
}

func (p *Parser) parseMerge() (ast.Node, error) {
	return p.foldBinary(p.parseInvert, false, []binOp{
		{token.Merge, ast.OpMerge},
	})
}

// parseInvert is prefix "!", right-recursive.
func (p *Parser) parseInvert() (ast.Node, error) {
	if p.peek() != token.Invert {
		return p.parseAdd()
	}
	opPair, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}
	operand, err := p.parseInvert()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.Node{
		Span: opPair.Meta.Span.Until(operand.Span),
		Type: ast.UnaryNode{OpMeta: opPair.Meta, Op: ast.Invert, Operand: p.insert(operand)},
	}, nil
}

func (p *Parser) parseAdd() (ast.Node, error) {
	return p.foldBinary(p.parseMul, false, []binOp{
		{token.Add, ast.OpAdd},
		{token.Sub, ast.OpSub},
	})
}

func (p *Parser) parseMul() (ast.Node, error) {
	return p.foldBinary(p.parseConcat, false, []binOp{
		{token.Mul, ast.OpMul},
		{token.Div, ast.OpDiv},
	})
}

func (p *Parser) parseConcat() (ast.Node, error) {
	return p.foldBinary(p.parseIsset, false, []binOp{
		{token.Concat, ast.OpConcat},
	})
}

func (p *Parser) parseIsset() (ast.Node, error) {
	return p.foldBinary(p.parseNegate, false, []binOp{
		{token.Question, ast.OpIsSet},
	})
}

// parseNegate is prefix "-", right-recursive.
func (p *Parser) parseNegate() (ast.Node, error) {
	if p.peek() != token.Sub {
		return p.parseFn()
	}
	opPair, err := p.next()
	if err != nil {
		return ast.Node{}, err
	}
	operand, err := p.parseNegate()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.Node{
		Span: opPair.Meta.Span.Until(operand.Span),
		Type: ast.UnaryNode{OpMeta: opPair.Meta, Op: ast.Negate, Operand: p.insert(operand)},
	}, nil
}

// parseFn is function application by juxtaposition: a left fold of atoms
// for as long as the next token can possibly start one.
func (p *Parser) parseFn() (ast.Node, error) {
	val, err := p.parseVal()
	if err != nil {
		return ast.Node{}, err
	}

	for p.peek().IsFnArg() {
		arg, err := p.parseVal()
		if err != nil {
			return ast.Node{}, err
		}
		fnID := p.insert(val)
		argID := p.insert(arg)
		val = ast.Node{
			Span: val.Span.Until(arg.Span),
			Type: ast.ApplyNode{Fn: fnID, Arg: argID},
		}
	}
	return val, nil
}
