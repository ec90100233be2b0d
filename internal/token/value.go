package token

// ValueKind enumerates the materialised literal kinds a Value can hold.
// Construction (parsing digits, escapes, path anchors) happens upstream in
// the tokenizer stage; the parser only ever embeds an already-built Value.
type ValueKind uint8

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueBool
	ValueString
	ValuePath
	ValueNull
)

// PathAnchor records how a path literal is rooted.
type PathAnchor uint8

const (
	AnchorAbsolute PathAnchor = iota
	AnchorRelative
	AnchorHome
	AnchorStore
)

// Value is the tagged union of literal values the tokenizer can produce.
type Value struct {
	Kind   ValueKind
	Int    int64
	Float  float64
	Bool   bool
	Str    string // ValueString content, or ValuePath content
	Anchor PathAnchor
}

func Int(v int64) Value          { return Value{Kind: ValueInt, Int: v} }
func Float(v float64) Value      { return Value{Kind: ValueFloat, Float: v} }
func Bool(v bool) Value          { return Value{Kind: ValueBool, Bool: v} }
func String(v string) Value      { return Value{Kind: ValueString, Str: v} }
func Null() Value                { return Value{Kind: ValueNull} }
func Path(a PathAnchor, s string) Value {
	return Value{Kind: ValuePath, Anchor: a, Str: s}
}
