package token

import "nixexpr/internal/source"

// TriviaKind classifies a piece of lexically insignificant source text.
type TriviaKind uint8

const (
	TriviaSpaces TriviaKind = iota
	TriviaNewlines
	TriviaComment
)

// Trivia is a span of whitespace or a comment attached to a token. The
// parser never interprets trivia — it is carried opaquely inside Meta so a
// downstream formatter can reconstruct source exactly.
type Trivia struct {
	Kind      TriviaKind
	Span      source.Span
	Multiline bool // only meaningful when Kind == TriviaComment
	Content   string
}

// Meta is the per-token metadata the tokenizer attaches to every Token: its
// span plus the trivia immediately surrounding it.
type Meta struct {
	Span     source.Span
	Leading  []Trivia
	Trailing []Trivia
}
