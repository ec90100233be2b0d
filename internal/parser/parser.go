// Package parser implements the recursive-descent core: it turns a token
// stream into a single ASTNode, inserting every node it references by
// NodeId into a shared arena. There is no error recovery — the first
// malformed construct aborts the parse and its error propagates straight to
// the caller.
package parser

import (
	"nixexpr/internal/ast"
	"nixexpr/internal/lookahead"
	"nixexpr/internal/parseerr"
	"nixexpr/internal/token"
)

// orIdent is the only place "or" means anything special: checked by text
// right after an attribute access. It is never lexed as a keyword (see the
// design notes on context-sensitive "or").
const orIdent = "or"

// Parser wraps a lookahead buffer and the arena its nodes are inserted
// into.
type Parser struct {
	buf   *lookahead.Buffer
	arena *ast.Arena
}

// New creates a Parser reading from src and inserting nodes into arena.
func New(src lookahead.Source, arena *ast.Arena) *Parser {
	return &Parser{buf: lookahead.New(src), arena: arena}
}

// Result is a successful parse: the arena holding every node the root
// transitively references, and the root node itself by value. The root is
// never inserted into its own arena — only its descendants are, since they
// are the ones referenced by NodeId from a parent.
type Result struct {
	Arena *ast.Arena
	Root  ast.Node
}

// Parse runs a full expression parse over a materialised token slice.
func Parse(tokens []token.Pair) (Result, error) {
	arena := ast.NewArena(ast.Hints{Nodes: uint(len(tokens))})
	p := New(newSliceSource(tokens), arena)
	root, err := p.parseExpr()
	if err != nil {
		return Result{}, err
	}
	return Result{Arena: arena, Root: root}, nil
}

// sliceSource adapts a pre-materialised token slice to lookahead.Source —
// the shape a nested sub-parse (interpolation bodies, dynamic attributes)
// is handed by the tokenizer.
type sliceSource struct {
	items []token.Pair
}

func newSliceSource(items []token.Pair) *sliceSource {
	return &sliceSource{items: items}
}

func (s *sliceSource) Next() (token.Pair, bool) {
	if len(s.items) == 0 {
		return token.Pair{}, false
	}
	item := s.items[0]
	s.items = s.items[1:]
	return item, true
}

func (p *Parser) insert(n ast.Node) ast.NodeId {
	return p.arena.Insert(n)
}

func (p *Parser) peekMeta() (token.Pair, bool) {
	return p.buf.PeekMeta()
}

func (p *Parser) peek() token.Kind {
	return p.buf.Peek()
}

func (p *Parser) push(item token.Pair) {
	p.buf.Push(item)
}

// next consumes and returns the next pair, translating lookahead's sentinel
// EOF error into the parser's own UnexpectedEOF variant.
func (p *Parser) next() (token.Pair, error) {
	pair, err := p.buf.Next()
	if err != nil {
		return token.Pair{}, parseerr.New()
	}
	return pair, nil
}

// expect consumes the next token and requires it to be kind, producing an
// Expected error (with or without a span, depending on whether the stream
// still had anything to offer) otherwise.
func (p *Parser) expect(kind token.Kind) (token.Meta, error) {
	pair, err := p.buf.Next()
	if err != nil {
		return token.Meta{}, parseerr.NewExpected(kind, parseerr.FoundToken{}, nil)
	}
	if pair.Token.Kind != kind {
		span := pair.Meta.Span
		return token.Meta{}, parseerr.NewExpected(kind, parseerr.FoundToken{Valid: true, Kind: pair.Token.Kind}, &span)
	}
	return pair.Meta, nil
}

// parseBranch parses a standalone token slice — an interpolation body or a
// dynamic attribute's contents — as a full expression, sharing this
// parser's arena via a reference so every id it hands out lands in the same
// flat pool.
func (p *Parser) parseBranch(tokens []token.Pair) (ast.Node, error) {
	sub := New(newSliceSource(tokens), p.arena.Reference())
	return sub.parseExpr()
}
