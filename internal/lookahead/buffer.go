// Package lookahead implements the parser's two-slot pushback over the raw
// token iterator. Two slots are exactly what the grammar needs: one
// consumed temporary plus one peek for the set-vs-pattern disambiguation at
// "{" (see the expression parser's atom parsing), and nothing else in the
// grammar looks further ahead.
package lookahead

import "nixexpr/internal/token"

// ErrUnexpectedEOF is returned by Next when the underlying source is
// exhausted. It intentionally carries no span — the parser translates it
// into its own UnexpectedEOF error, which has no span either.
type errUnexpectedEOF struct{}

func (errUnexpectedEOF) Error() string { return "unexpected eof" }

// ErrUnexpectedEOF is the sentinel error Next returns at end of stream.
var ErrUnexpectedEOF error = errUnexpectedEOF{}

// Source is the raw token iterator the buffer wraps. Next returns false once
// exhausted, mirroring a Go range-over-func / iterator boundary without
// depending on any particular iteration protocol.
type Source interface {
	Next() (token.Pair, bool)
}

// Buffer layers up to two pre-read pairs over a Source.
type Buffer struct {
	src  Source
	pend [2]token.Pair
	n    int // number of valid entries in pend, pend[0] is next to pop
}

// New wraps src in a Buffer.
func New(src Source) *Buffer {
	return &Buffer{src: src}
}

// Push returns a previously-consumed pair to the front of the buffer. It
// panics if two items are already pending — the grammar never needs more
// than one level of pushback on top of one peek.
func (b *Buffer) Push(item token.Pair) {
	if b.n >= len(b.pend) {
		panic("lookahead: pushback buffer full")
	}
	// Shift existing entries right to keep item in front.
	for i := b.n; i > 0; i-- {
		b.pend[i] = b.pend[i-1]
	}
	b.pend[0] = item
	b.n++
}

// fill ensures at least one pending slot is populated from src, if src has
// more to give. Returns false if nothing more is available.
func (b *Buffer) fill() bool {
	if b.n > 0 {
		return true
	}
	item, ok := b.src.Next()
	if !ok {
		return false
	}
	b.pend[0] = item
	b.n = 1
	return true
}

// PeekMeta returns the next pair without consuming it.
func (b *Buffer) PeekMeta() (token.Pair, bool) {
	if !b.fill() {
		return token.Pair{}, false
	}
	return b.pend[0], true
}

// Peek returns the next token's Kind without consuming it, or token.EOF if
// the source is exhausted.
func (b *Buffer) Peek() token.Kind {
	pair, ok := b.PeekMeta()
	if !ok {
		return token.EOF
	}
	return pair.Token.Kind
}

// Next consumes and returns the next pair, or ErrUnexpectedEOF.
func (b *Buffer) Next() (token.Pair, error) {
	if !b.fill() {
		return token.Pair{}, ErrUnexpectedEOF
	}
	item := b.pend[0]
	for i := 0; i < b.n-1; i++ {
		b.pend[i] = b.pend[i+1]
	}
	b.n--
	return item, nil
}
