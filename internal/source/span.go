// Package source holds the byte-range bookkeeping shared by every token and
// AST node: spans and the handful of operations the parser needs on them.
package source

import "fmt"

// Span is a half-open byte range [Start, End) into the source text that
// produced the token stream. End is only meaningful when EndValid is true —
// a token observed right at EOF may not have a known end yet, mirroring the
// upstream grammar's Option<u32> end.
type Span struct {
	Start    uint32
	End      uint32
	EndValid bool
}

// NewSpan builds a Span with a known end.
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end, EndValid: true}
}

// EmptyEOFSpan builds a Span with no known end, for errors discovered at the
// end of the token stream before any further span is available.
func EmptyEOFSpan(start uint32) Span {
	return Span{Start: start}
}

// Until returns a span starting at s.Start and ending at other's end (or
// without a known end, if other has none either). This is the sole span
// constructor the parser needs to cover a node from its first token through
// its last constituent.
func (s Span) Until(other Span) Span {
	return Span{Start: s.Start, End: other.End, EndValid: other.EndValid}
}

func (s Span) String() string {
	if !s.EndValid {
		return fmt.Sprintf("%d:?", s.Start)
	}
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}
