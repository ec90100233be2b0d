// Package ast defines the parser's tagged-variant AST: ASTNode pairs a Span
// with a Type, where Type is implemented by one concrete struct per
// syntactic form (values, sets, lambdas, operations, ...). Children are
// referenced by NodeId into the shared arena rather than owned directly, so
// nodes produced by nested sub-parses (interpolation bodies, dynamic
// attributes) stay meaningful in one flat pool.
package ast

import (
	"nixexpr/internal/arena"
	"nixexpr/internal/source"
	"nixexpr/internal/token"
)

// NodeId is the arena handle every child reference in the AST uses.
type NodeId = arena.NodeId

// Arena is the concrete arena type the parser builds nodes in.
type Arena = arena.Arena[Node]

// Hints sizes the initial node arena. The teacher's ast.Hints carries one
// field per per-shape sub-arena (Files, Items, Stmts, Exprs, Types); this AST
// has a single arena for every node shape, so there is only one count worth
// hinting.
type Hints struct {
	Nodes uint
}

// NewArena creates an empty node arena sized by hints.
func NewArena(hints Hints) *Arena {
	return arena.New[Node](hints.Nodes)
}

// Node is a single AST node: its full source span (including outermost
// punctuation) and its syntactic form.
type Node struct {
	Span source.Span
	Type Type
}

// Type is implemented by every concrete AST node shape. It carries no
// behavior — it exists purely as a closed-set marker so a type switch on
// ast.Type is exhaustive by construction, the same role Rust's ASTType enum
// plays in the source grammar.
type Type interface {
	astType()
}

// Leaf / structural forms.

// ValueNode is a literal (Token::Value already materialised upstream).
type ValueNode struct {
	Meta  token.Meta
	Value token.Value
}

// VarNode is an identifier use.
type VarNode struct {
	Meta token.Meta
	Name string
}

// InterpolPart is one piece of an interpolated string: either a literal
// run, or a parsed sub-expression together with the meta of its closing
// "}".
type InterpolPart struct {
	IsExpr  bool
	Literal string
	Expr    NodeId
	Close   token.Meta
}

// InterpolNode is a string built from literal and interpolated parts.
type InterpolNode struct {
	Meta      token.Meta
	Multiline bool
	Parts     []InterpolPart
}

// ListNode is a bracketed sequence of atoms.
type ListNode struct {
	Open  token.Meta
	Items []NodeId
	Close token.Meta
}

// ParensNode is a parenthesised expression.
type ParensNode struct {
	Open  token.Meta
	Inner NodeId
	Close token.Meta
}

// SetNode is a set literal, optionally recursive.
type SetNode struct {
	Recursive *token.Meta
	Open      token.Meta
	Entries   []SetEntry
	Close     token.Meta
}

// LambdaNode is a function: its argument shape, the colon, and the body.
type LambdaNode struct {
	Arg   LambdaArg
	Colon token.Meta
	Body  NodeId
}

// Attribute machinery.

// IndexSetNode is "a.b" attribute access.
type IndexSetNode struct {
	Set  NodeId
	Dot  token.Meta
	Attr NodeId
}

// OrDefaultNode is "a.b or d". Per the source grammar's own span policy, its
// Span covers Set through Attr only — not Default. This is preserved
// exactly; see DESIGN.md's Open Question notes.
type OrDefaultNode struct {
	Set     NodeId
	Dot     token.Meta
	Attr    NodeId
	Or      token.Meta
	Default NodeId
}

// DynamicNode is "${expr}" used as an attribute.
type DynamicNode struct {
	Meta  token.Meta
	Inner NodeId
	Close token.Meta
}

// Control forms.

// AssertNode is "assert cond; body".
type AssertNode struct {
	AssertMeta token.Meta
	Cond       NodeId
	SemiMeta   token.Meta
	Body       NodeId
}

// IfElseNode is "if cond then a else b".
type IfElseNode struct {
	IfMeta    token.Meta
	Condition NodeId
	ThenMeta  token.Meta
	ThenBody  NodeId
	ElseMeta  token.Meta
	ElseBody  NodeId
}

// ImportNode is "import path".
type ImportNode struct {
	ImportMeta token.Meta
	Target     NodeId
}

// LetNode is the legacy "let { ... }" form, where the "body" attribute
// becomes the expression's value (resolved by a later stage, not here).
type LetNode struct {
	LetMeta token.Meta
	Open    token.Meta
	Entries []SetEntry
	Close   token.Meta
}

// LetInNode is "let a = ...; in body".
type LetInNode struct {
	LetMeta token.Meta
	Entries []SetEntry
	InMeta  token.Meta
	Body    NodeId
}

// WithNode is "with env; body".
type WithNode struct {
	WithMeta token.Meta
	Env      NodeId
	SemiMeta token.Meta
	Body     NodeId
}

// Operators.

// ApplyNode is function application by juxtaposition.
type ApplyNode struct {
	Fn  NodeId
	Arg NodeId
}

// UnaryOp enumerates the prefix operators.
type UnaryOp uint8

const (
	Invert UnaryOp = iota
	Negate
)

// UnaryNode is a prefix "!" or "-" application.
type UnaryNode struct {
	OpMeta  token.Meta
	Op      UnaryOp
	Operand NodeId
}

// Operator enumerates the infix operators.
type Operator uint8

const (
	OpConcat Operator = iota
	OpMerge
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpOr
	OpEqual
	OpNotEqual
	OpImplication
	OpIsSet
	OpLess
	OpLessOrEq
	OpMore
	OpMoreOrEq
)

// OperationNode is a binary "lhs op rhs".
type OperationNode struct {
	Lhs    NodeId
	OpMeta token.Meta
	Op     Operator
	Rhs    NodeId
}

func (ValueNode) astType()     {}
func (VarNode) astType()       {}
func (InterpolNode) astType()  {}
func (ListNode) astType()      {}
func (ParensNode) astType()    {}
func (SetNode) astType()       {}
func (LambdaNode) astType()    {}
func (IndexSetNode) astType()  {}
func (OrDefaultNode) astType() {}
func (DynamicNode) astType()   {}
func (AssertNode) astType()    {}
func (IfElseNode) astType()    {}
func (ImportNode) astType()    {}
func (LetNode) astType()       {}
func (LetInNode) astType()     {}
func (WithNode) astType()      {}
func (ApplyNode) astType()     {}
func (UnaryNode) astType()     {}
func (OperationNode) astType() {}
