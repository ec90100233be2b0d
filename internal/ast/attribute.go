package ast

import "nixexpr/internal/token"

// AttrSegment is one element of an attribute path: the segment node (an
// identifier, a literal, a dynamic ${...}, or an interpolated string) and
// the "." that follows it — nil on the path's last segment.
type AttrSegment struct {
	Node NodeId
	Dot  *token.Meta
}

// Attribute is an ordered attribute path, e.g. "a.${b}.c". Every Assign
// entry's Attribute has at least one segment (§3 invariant).
type Attribute []AttrSegment
