package token

// Kind enumerates every token category the tokenizer stage may hand to the
// parser. The parser only branches on Kind; payload data (identifier text,
// literal values, nested token slices) rides along on the Token struct.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	// Leaves carrying payload.
	Ident    // identifier use; Token.Text holds the name
	Value    // a materialised literal; Token.Value holds it
	Interpol // string interpolation; Token.Multiline/Parts hold the pieces
	Dynamic  // ${...} used as an attribute; Token.Nested/Token.Close hold it

	// Punctuation.
	ParenOpen
	ParenClose
	SquareBOpen
	SquareBClose
	CurlyBOpen
	CurlyBClose
	Dot
	Comma
	Semicolon
	Colon
	At
	Question
	Ellipsis
	Assign

	// Operators.
	Add
	Sub
	Mul
	Div
	Concat
	Merge
	Equal
	NotEqual
	Less
	LessOrEq
	More
	MoreOrEq
	And
	Or
	Implication
	Invert

	// Keywords.
	Let
	In
	Rec
	With
	If
	Then
	Else
	Assert
	Import
	Inherit
)

var kindNames = map[Kind]string{
	Invalid:      "invalid",
	EOF:          "eof",
	Ident:        "identifier",
	Value:        "value",
	Interpol:     "interpolated string",
	Dynamic:      "dynamic attribute",
	ParenOpen:    "(",
	ParenClose:   ")",
	SquareBOpen:  "[",
	SquareBClose: "]",
	CurlyBOpen:   "{",
	CurlyBClose:  "}",
	Dot:          ".",
	Comma:        ",",
	Semicolon:    ";",
	Colon:        ":",
	At:           "@",
	Question:     "?",
	Ellipsis:     "...",
	Assign:       "=",
	Add:          "+",
	Sub:          "-",
	Mul:          "*",
	Div:          "/",
	Concat:       "++",
	Merge:        "//",
	Equal:        "==",
	NotEqual:     "!=",
	Less:         "<",
	LessOrEq:     "<=",
	More:         ">",
	MoreOrEq:     ">=",
	And:          "&&",
	Or:           "||",
	Implication:  "->",
	Invert:       "!",
	Let:          "let",
	In:           "in",
	Rec:          "rec",
	With:         "with",
	If:           "if",
	Then:         "then",
	Else:         "else",
	Assert:       "assert",
	Import:       "import",
	Inherit:      "inherit",
}

// String renders a Kind the way diagnostics want to show it ("expected X").
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
