package parser

import (
	"nixexpr/internal/ast"
	"nixexpr/internal/token"
)

// binOp pairs a token kind with the Operator it introduces — the table form
// every binary precedence level hands to foldBinary.
type binOp struct {
	kind token.Kind
	op   ast.Operator
}

func lookupOp(table []binOp, kind token.Kind) (ast.Operator, bool) {
	for _, entry := range table {
		if entry.kind == kind {
			return entry.op, true
		}
	}
	return 0, false
}

// foldBinary factors the "parse one operand at the next-tighter level, then
// peek for a matching operator and fold" pattern shared by every binary
// precedence level. once restricts the level to at most one application —
// the two non-associative comparison levels; everything else loops left.
func (p *Parser) foldBinary(next func() (ast.Node, error), once bool, table []binOp) (ast.Node, error) {
	val, err := next()
	if err != nil {
		return ast.Node{}, err
	}

	for {
		op, ok := lookupOp(table, p.peek())
		if !ok {
			break
		}
		opPair, err := p.next()
		if err != nil {
			return ast.Node{}, err
		}
		rhs, err := next()
		if err != nil {
			return ast.Node{}, err
		}

		lhsID := p.insert(val)
		rhsID := p.insert(rhs)
		val = ast.Node{
			Span: val.Span.Until(rhs.Span),
			Type: ast.OperationNode{Lhs: lhsID, OpMeta: opPair.Meta, Op: op, Rhs: rhsID},
		}

		if once {
			break
		}
	}
	return val, nil
}
