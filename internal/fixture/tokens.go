package fixture

import (
	"fmt"
	"strconv"
	"strings"

	"nixexpr/internal/token"
)

// kindByName maps the mini token-language's names (matching token.Kind's Go
// identifiers) back to the Kind itself, the inverse of the lookup a
// diagnostic message needs.
var kindByName = map[string]token.Kind{
	"Ident": token.Ident, "Value": token.Value, "Interpol": token.Interpol, "Dynamic": token.Dynamic,
	"ParenOpen": token.ParenOpen, "ParenClose": token.ParenClose,
	"SquareBOpen": token.SquareBOpen, "SquareBClose": token.SquareBClose,
	"CurlyBOpen": token.CurlyBOpen, "CurlyBClose": token.CurlyBClose,
	"Dot": token.Dot, "Comma": token.Comma, "Semicolon": token.Semicolon, "Colon": token.Colon,
	"At": token.At, "Question": token.Question, "Ellipsis": token.Ellipsis, "Assign": token.Assign,
	"Add": token.Add, "Sub": token.Sub, "Mul": token.Mul, "Div": token.Div,
	"Concat": token.Concat, "Merge": token.Merge,
	"Equal": token.Equal, "NotEqual": token.NotEqual,
	"Less": token.Less, "LessOrEq": token.LessOrEq, "More": token.More, "MoreOrEq": token.MoreOrEq,
	"And": token.And, "Or": token.Or, "Implication": token.Implication, "Invert": token.Invert,
	"Let": token.Let, "In": token.In, "Rec": token.Rec, "With": token.With,
	"If": token.If, "Then": token.Then, "Else": token.Else,
	"Assert": token.Assert, "Import": token.Import, "Inherit": token.Inherit,
}

// ParseTokenSpec turns one mini-language entry into a token.Pair. The
// grammar is "Kind" or "Kind:payload", with payload interpretation
// depending on Kind:
//
//	"Ident:foo"          -> Ident token with Text "foo"
//	"Value.Int:42"       -> Value token holding an int
//	"Value.Float:1.5"    -> Value token holding a float
//	"Value.Bool:true"    -> Value token holding a bool
//	"Value.String:hi"    -> Value token holding a string
//	"Value.Null"         -> Value token holding null
//
// Nested forms (Dynamic, Interpol) aren't representable in this flat
// mini-language; scenarios needing them stay as Go table tests.
func ParseTokenSpec(spec string) (token.Pair, error) {
	name, payload, hasPayload := strings.Cut(spec, ":")

	if strings.HasPrefix(name, "Value.") {
		sub := strings.TrimPrefix(name, "Value.")
		v, err := parseValuePayload(sub, payload, hasPayload)
		if err != nil {
			return token.Pair{}, fmt.Errorf("token spec %q: %w", spec, err)
		}
		return token.Pair{Token: token.Token{Kind: token.Value, Value: v}}, nil
	}

	kind, ok := kindByName[name]
	if !ok {
		return token.Pair{}, fmt.Errorf("token spec %q: unknown kind %q", spec, name)
	}
	if kind == token.Ident {
		if !hasPayload {
			return token.Pair{}, fmt.Errorf("token spec %q: Ident requires a :name payload", spec)
		}
		return token.Pair{Token: token.Token{Kind: token.Ident, Text: payload}}, nil
	}
	return token.Pair{Token: token.Token{Kind: kind}}, nil
}

func parseValuePayload(sub, payload string, hasPayload bool) (token.Value, error) {
	switch sub {
	case "Int":
		n, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return token.Value{}, fmt.Errorf("invalid int payload %q: %w", payload, err)
		}
		return token.Int(n), nil
	case "Float":
		f, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return token.Value{}, fmt.Errorf("invalid float payload %q: %w", payload, err)
		}
		return token.Float(f), nil
	case "Bool":
		b, err := strconv.ParseBool(payload)
		if err != nil {
			return token.Value{}, fmt.Errorf("invalid bool payload %q: %w", payload, err)
		}
		return token.Bool(b), nil
	case "String":
		return token.String(payload), nil
	case "Null":
		if hasPayload {
			return token.Value{}, fmt.Errorf("Value.Null takes no payload, got %q", payload)
		}
		return token.Null(), nil
	default:
		return token.Value{}, fmt.Errorf("unknown value kind %q", sub)
	}
}

// ParseTokens converts a whole scenario's token specs into a token.Pair
// slice, in order.
func ParseTokens(specs []string) ([]token.Pair, error) {
	out := make([]token.Pair, len(specs))
	for i, spec := range specs {
		pair, err := ParseTokenSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		out[i] = pair
	}
	return out, nil
}
