package ast

import "nixexpr/internal/source"
import "nixexpr/internal/token"

// LambdaArg is a function's single argument: either a bare identifier or a
// destructuring pattern.
type LambdaArg interface {
	lambdaArg()
}

// IdentArg is "ident: body".
type IdentArg struct {
	Meta token.Meta
	Name string
}

// PatDefault is a pattern entry's "? default-expr" clause.
type PatDefault struct {
	Question token.Meta
	Value    NodeId
}

// PatEntry is one destructured name inside a pattern: "name" or
// "name ? default". Comma is nil only on the last entry (§3 invariant).
type PatEntry struct {
	Ident   token.Meta
	Name    string
	Default *PatDefault
	Comma   *token.Meta
}

// PatternBind records a pattern's "name@" binding, and whether "name@"
// appeared before the "{...}" (the "name @ { ... }" form) or after it (the
// "{ ... } @ name" form).
type PatternBind struct {
	Before bool
	Span   source.Span
	At     token.Meta
	Ident  token.Meta
	Name   string
}

// PatternArg is "{ entries, ... } [@ name]: body" (or the leading
// "name@{ ... }:" form, recorded via Bind.Before).
//
// Invariant: at most one PatternBind per pattern (§3).
type PatternArg struct {
	Open     token.Meta
	Entries  []PatEntry
	Close    token.Meta
	Bind     *PatternBind
	Ellipsis *token.Meta
}

func (IdentArg) lambdaArg()   {}
func (PatternArg) lambdaArg() {}
