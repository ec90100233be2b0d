package ast

import "nixexpr/internal/token"

// SetEntry is one binding inside a set body: either a plain assignment or
// an inherit clause.
type SetEntry interface {
	setEntry()
}

// Parens wraps a bracketed sub-expression; used by Inherit's "(from)" clause
// and reused for plain parenthesised expressions via ParensNode where a
// NodeId handle (not an inline value) is more convenient.
type Parens struct {
	Open  token.Meta
	Inner NodeId
	Close token.Meta
}

// IdentRef is a bare identifier together with its token metadata, used by
// inherit's variable list.
type IdentRef struct {
	Meta token.Meta
	Name string
}

// AssignEntry is "attrpath = value;".
//
// Invariant: Path always has at least one segment (§3).
type AssignEntry struct {
	Path   Attribute
	Assign token.Meta
	Value  NodeId
	Semi   token.Meta
}

// InheritEntry is "inherit [(from)] ident*;".
type InheritEntry struct {
	Inherit token.Meta
	From    *Parens
	Idents  []IdentRef
	Semi    token.Meta
}

func (AssignEntry) setEntry()   {}
func (InheritEntry) setEntry()  {}
