package token

// IsFnArg reports whether a token can start a function-application argument,
// i.e. it is one of the atoms parseVal knows how to open. Application is
// juxtaposition with no operator, so the left-folding loop in parseFn must
// stop the moment the next token can't possibly start an atom.
func (k Kind) IsFnArg() bool {
	switch k {
	case ParenOpen, Import, Rec, CurlyBOpen, SquareBOpen, Dynamic, Value, Ident, Interpol:
		return true
	default:
		return false
	}
}

// IsAttrStart reports whether a token can start an attribute path segment
// (an identifier, a literal, a dynamic ${...}, or an interpolated string).
func (k Kind) IsAttrStart() bool {
	switch k {
	case Ident, Value, Dynamic, Interpol:
		return true
	default:
		return false
	}
}
