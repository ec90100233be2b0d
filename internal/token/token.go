package token

// InterpolPart is one piece of a Token's Interpol payload: either a literal
// run of text, or a nested token slice to be parsed as a sub-expression
// (the slice between "${" and "}" inside a string).
type InterpolPart struct {
	IsTokens bool
	Literal  string
	Tokens   []Pair
	Close    Meta
}

// Token is a single lexical unit together with whatever payload its Kind
// carries. Construction of Value/Ident/Interpol/Dynamic payloads is entirely
// the tokenizer's responsibility; the parser treats Token as opaque data it
// pattern-matches on Kind.
type Token struct {
	Kind Kind

	Text  string // Ident name
	Value Value  // Kind == Value

	Multiline bool           // Kind == Interpol
	Parts     []InterpolPart // Kind == Interpol

	Nested []Pair // Kind == Dynamic: the token slice inside ${ }
	Close  Meta   // Kind == Dynamic: meta of the closing brace
}

// Pair is one element of the token stream the parser consumes: a token
// together with its surrounding metadata.
type Pair struct {
	Meta  Meta
	Token Token
}
