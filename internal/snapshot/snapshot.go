// Package snapshot renders a parsed ast.Tree into a stable s-expression
// string and persists it as a msgpack-encoded golden file, the way the
// teacher's internal/driver.DiskCache persists a schema-versioned payload
// and internal/diag.FormatGoldenDiagnostics renders a stable single string
// for golden comparisons — here applied to AST shape instead of
// diagnostics or module metadata.
package snapshot

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"nixexpr/internal/ast"
	"nixexpr/internal/token"
)

// schemaVersion guards the golden file format; bump when Payload's shape
// changes so stale goldens fail loudly instead of decoding garbage.
const schemaVersion uint16 = 1

// Payload is what actually gets msgpack-encoded to or read from a golden
// file.
type Payload struct {
	Schema   uint16
	Rendered string
}

// Encode renders tree and wraps it in a schema-versioned Payload, ready to
// write to a golden file.
func Encode(tree ast.Tree) ([]byte, error) {
	payload := Payload{Schema: schemaVersion, Rendered: Render(tree)}
	return encodePayload(payload)
}

func encodePayload(p Payload) ([]byte, error) {
	return msgpack.Marshal(p)
}

// Decode reverses Encode, rejecting payloads from a different schema
// version outright rather than trusting a possibly-stale golden file.
func Decode(data []byte) (Payload, error) {
	var payload Payload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return Payload{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if payload.Schema != schemaVersion {
		return Payload{}, fmt.Errorf("decode snapshot: schema %d, want %d", payload.Schema, schemaVersion)
	}
	return payload, nil
}

// WriteGolden renders tree and writes it to path, overwriting whatever was
// there. Used to seed or update golden files, never by a test asserting
// correctness.
func WriteGolden(path string, tree ast.Tree) error {
	data, err := Encode(tree)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// CompareGolden renders tree and reports whether it matches the golden file
// at path. A false result carries both renderings for a useful diff.
func CompareGolden(path string, tree ast.Tree) (match bool, got, want string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, "", "", fmt.Errorf("read golden %s: %w", path, err)
	}
	payload, err := Decode(data)
	if err != nil {
		return false, "", "", fmt.Errorf("golden %s: %w", path, err)
	}
	got = Render(tree)
	return got == payload.Rendered, got, payload.Rendered, nil
}

// Render walks tree into a deterministic, parenthesised s-expression. It is
// the moral equivalent of the source grammar's own debug Display for ASTNode
// — not a faithful reprint of Nix syntax, just a stable textual shape tests
// and golden files can compare.
func Render(tree ast.Tree) string {
	var b strings.Builder
	render(&b, tree)
	return b.String()
}

func render(b *strings.Builder, tree ast.Tree) {
	switch t := tree.(type) {
	case ast.TValue:
		b.WriteString("(value ")
		b.WriteString(renderValue(t.Value))
		b.WriteByte(')')
	case ast.TVar:
		fmt.Fprintf(b, "(var %s)", t.Name)
	case ast.TInterpol:
		b.WriteString("(interpol")
		for _, part := range t.Parts {
			b.WriteByte(' ')
			if part.IsExpr {
				render(b, part.Expr)
			} else {
				fmt.Fprintf(b, "%q", part.Literal)
			}
		}
		b.WriteByte(')')
	case ast.TList:
		b.WriteString("(list")
		for _, item := range t.Items {
			b.WriteByte(' ')
			render(b, item)
		}
		b.WriteByte(')')
	case ast.TParens:
		b.WriteString("(parens ")
		render(b, t.Inner)
		b.WriteByte(')')
	case ast.TSet:
		if t.Recursive {
			b.WriteString("(rec-set")
		} else {
			b.WriteString("(set")
		}
		for _, e := range t.Entries {
			b.WriteByte(' ')
			renderSetEntry(b, e)
		}
		b.WriteByte(')')
	case ast.TLambda:
		b.WriteString("(lambda ")
		renderLambdaArg(b, t.Arg)
		b.WriteByte(' ')
		render(b, t.Body)
		b.WriteByte(')')
	case ast.TIndexSet:
		b.WriteString("(index ")
		render(b, t.Set)
		b.WriteByte(' ')
		render(b, t.Attr)
		b.WriteByte(')')
	case ast.TOrDefault:
		b.WriteString("(or-default ")
		render(b, t.Set)
		b.WriteByte(' ')
		render(b, t.Attr)
		b.WriteByte(' ')
		render(b, t.Default)
		b.WriteByte(')')
	case ast.TDynamic:
		b.WriteString("(dynamic ")
		render(b, t.Inner)
		b.WriteByte(')')
	case ast.TAssert:
		b.WriteString("(assert ")
		render(b, t.Cond)
		b.WriteByte(' ')
		render(b, t.Body)
		b.WriteByte(')')
	case ast.TIfElse:
		b.WriteString("(if ")
		render(b, t.Cond)
		b.WriteByte(' ')
		render(b, t.Then)
		b.WriteByte(' ')
		render(b, t.Else)
		b.WriteByte(')')
	case ast.TImport:
		b.WriteString("(import ")
		render(b, t.Target)
		b.WriteByte(')')
	case ast.TLet:
		b.WriteString("(let")
		for _, e := range t.Entries {
			b.WriteByte(' ')
			renderSetEntry(b, e)
		}
		b.WriteByte(')')
	case ast.TLetIn:
		b.WriteString("(let-in (")
		for i, e := range t.Entries {
			if i > 0 {
				b.WriteByte(' ')
			}
			renderSetEntry(b, e)
		}
		b.WriteString(") ")
		render(b, t.Body)
		b.WriteByte(')')
	case ast.TWith:
		b.WriteString("(with ")
		render(b, t.Env)
		b.WriteByte(' ')
		render(b, t.Body)
		b.WriteByte(')')
	case ast.TApply:
		b.WriteString("(apply ")
		render(b, t.Fn)
		b.WriteByte(' ')
		render(b, t.Arg)
		b.WriteByte(')')
	case ast.TUnary:
		fmt.Fprintf(b, "(%s ", unaryOpName(t.Op))
		render(b, t.Operand)
		b.WriteByte(')')
	case ast.TOperation:
		fmt.Fprintf(b, "(%s ", operatorName(t.Op))
		render(b, t.Lhs)
		b.WriteByte(' ')
		render(b, t.Rhs)
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("snapshot: render: unhandled Tree type %T", tree))
	}
}

func renderSetEntry(b *strings.Builder, e ast.TSetEntry) {
	switch se := e.(type) {
	case ast.TAssign:
		b.WriteString("(assign (")
		for i, seg := range se.Path {
			if i > 0 {
				b.WriteByte(' ')
			}
			render(b, seg)
		}
		b.WriteString(") ")
		render(b, se.Value)
		b.WriteByte(')')
	case ast.TInherit:
		b.WriteString("(inherit")
		if se.From != nil {
			b.WriteString(" (from ")
			render(b, se.From)
			b.WriteByte(')')
		}
		for _, name := range se.Names {
			fmt.Fprintf(b, " %s", name)
		}
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("snapshot: renderSetEntry: unhandled entry type %T", e))
	}
}

func renderLambdaArg(b *strings.Builder, arg ast.TLambdaArg) {
	switch la := arg.(type) {
	case ast.TIdentArg:
		fmt.Fprintf(b, "(ident %s)", la.Name)
	case ast.TPatternArg:
		b.WriteString("(pattern (")
		for i, e := range la.Entries {
			if i > 0 {
				b.WriteByte(' ')
			}
			if e.Default != nil {
				b.WriteString("(entry ")
				b.WriteString(e.Name)
				b.WriteByte(' ')
				render(b, e.Default)
				b.WriteByte(')')
			} else {
				fmt.Fprintf(b, "(entry %s)", e.Name)
			}
		}
		b.WriteByte(')')
		if la.Ellipsis {
			b.WriteString(" ellipsis")
		}
		if la.Bind != nil {
			fmt.Fprintf(b, " (bind %s)", *la.Bind)
		}
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("snapshot: renderLambdaArg: unhandled arg type %T", arg))
	}
}

func renderValue(v token.Value) string {
	switch v.Kind {
	case token.ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case token.ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case token.ValueBool:
		return strconv.FormatBool(v.Bool)
	case token.ValueString:
		return strconv.Quote(v.Str)
	case token.ValuePath:
		return fmt.Sprintf("path(%d,%q)", v.Anchor, v.Str)
	case token.ValueNull:
		return "null"
	default:
		panic(fmt.Sprintf("snapshot: renderValue: unhandled value kind %v", v.Kind))
	}
}

func unaryOpName(op ast.UnaryOp) string {
	switch op {
	case ast.Invert:
		return "invert"
	case ast.Negate:
		return "negate"
	default:
		panic(fmt.Sprintf("snapshot: unhandled unary op %v", op))
	}
}

func operatorName(op ast.Operator) string {
	switch op {
	case ast.OpConcat:
		return "concat"
	case ast.OpMerge:
		return "merge"
	case ast.OpAdd:
		return "add"
	case ast.OpSub:
		return "sub"
	case ast.OpMul:
		return "mul"
	case ast.OpDiv:
		return "div"
	case ast.OpAnd:
		return "and"
	case ast.OpOr:
		return "or"
	case ast.OpEqual:
		return "eq"
	case ast.OpNotEqual:
		return "neq"
	case ast.OpImplication:
		return "implication"
	case ast.OpIsSet:
		return "isset"
	case ast.OpLess:
		return "less"
	case ast.OpLessOrEq:
		return "less-eq"
	case ast.OpMore:
		return "more"
	case ast.OpMoreOrEq:
		return "more-eq"
	default:
		panic(fmt.Sprintf("snapshot: unhandled operator %v", op))
	}
}
