package ast

import "nixexpr/internal/token"

// Tree is a plain, NodeId-free concrete representation of a parsed
// expression. It exists solely so tests can assert against structural shape
// instead of threading an Arena and NodeIds through every comparison — the
// moral equivalent of the source grammar's own "intoactualslowtree" test
// helper (§6's "optional consumer that walks the arena"). Nothing in the
// parser depends on Tree or ToTree; they are read-only, test-facing sugar.
type Tree interface {
	isTree()
}

type TValue struct{ Value token.Value }
type TVar struct{ Name string }
type TInterpolPart struct {
	IsExpr  bool
	Literal string
	Expr    Tree
}
type TInterpol struct {
	Multiline bool
	Parts     []TInterpolPart
}
type TList struct{ Items []Tree }
type TParens struct{ Inner Tree }

type TSetEntry interface{ isSetEntry() }
type TAssign struct {
	Path  []Tree
	Value Tree
}
type TInherit struct {
	From  Tree // nil when there is no "(from)" clause
	Names []string
}

type TSet struct {
	Recursive bool
	Entries   []TSetEntry
}

type TLambdaArg interface{ isLambdaArg() }
type TIdentArg struct{ Name string }
type TPatEntry struct {
	Name    string
	Default Tree // nil when absent
}
type TPatternArg struct {
	Entries  []TPatEntry
	Bind     *string
	Ellipsis bool
}
type TLambda struct {
	Arg  TLambdaArg
	Body Tree
}

type TIndexSet struct{ Set, Attr Tree }
type TOrDefault struct{ Set, Attr, Default Tree }
type TDynamic struct{ Inner Tree }

type TAssert struct{ Cond, Body Tree }
type TIfElse struct{ Cond, Then, Else Tree }
type TImport struct{ Target Tree }
type TLet struct{ Entries []TSetEntry }
type TLetIn struct {
	Entries []TSetEntry
	Body    Tree
}
type TWith struct{ Env, Body Tree }

type TApply struct{ Fn, Arg Tree }
type TUnary struct {
	Op      UnaryOp
	Operand Tree
}
type TOperation struct {
	Lhs Tree
	Op  Operator
	Rhs Tree
}

func (TValue) isTree()     {}
func (TVar) isTree()       {}
func (TInterpol) isTree()  {}
func (TList) isTree()      {}
func (TParens) isTree()    {}
func (TSet) isTree()       {}
func (TLambda) isTree()    {}
func (TIndexSet) isTree()  {}
func (TOrDefault) isTree() {}
func (TDynamic) isTree()   {}
func (TAssert) isTree()    {}
func (TIfElse) isTree()    {}
func (TImport) isTree()    {}
func (TLet) isTree()       {}
func (TLetIn) isTree()     {}
func (TWith) isTree()      {}
func (TApply) isTree()     {}
func (TUnary) isTree()     {}
func (TOperation) isTree() {}

func (TAssign) isSetEntry()  {}
func (TInherit) isSetEntry() {}

func (TIdentArg) isLambdaArg()   {}
func (TPatternArg) isLambdaArg() {}

// ToTree walks a (Arena, NodeId) pair into a Tree. It panics on a malformed
// arena (an id that doesn't resolve) since that can only happen if the
// parser itself is broken — this is test-facing code, not a parser of
// untrusted input.
func ToTree(a *Arena, id NodeId) Tree {
	n := a.Get(id)
	switch t := n.Type.(type) {
	case ValueNode:
		return TValue{Value: t.Value}
	case VarNode:
		return TVar{Name: t.Name}
	case InterpolNode:
		parts := make([]TInterpolPart, len(t.Parts))
		for i, p := range t.Parts {
			if p.IsExpr {
				parts[i] = TInterpolPart{IsExpr: true, Expr: ToTree(a, p.Expr)}
			} else {
				parts[i] = TInterpolPart{Literal: p.Literal}
			}
		}
		return TInterpol{Multiline: t.Multiline, Parts: parts}
	case ListNode:
		items := make([]Tree, len(t.Items))
		for i, it := range t.Items {
			items[i] = ToTree(a, it)
		}
		return TList{Items: items}
	case ParensNode:
		return TParens{Inner: ToTree(a, t.Inner)}
	case SetNode:
		return TSet{Recursive: t.Recursive != nil, Entries: toSetEntries(a, t.Entries)}
	case LambdaNode:
		return TLambda{Arg: toLambdaArg(a, t.Arg), Body: ToTree(a, t.Body)}
	case IndexSetNode:
		return TIndexSet{Set: ToTree(a, t.Set), Attr: ToTree(a, t.Attr)}
	case OrDefaultNode:
		return TOrDefault{Set: ToTree(a, t.Set), Attr: ToTree(a, t.Attr), Default: ToTree(a, t.Default)}
	case DynamicNode:
		return TDynamic{Inner: ToTree(a, t.Inner)}
	case AssertNode:
		return TAssert{Cond: ToTree(a, t.Cond), Body: ToTree(a, t.Body)}
	case IfElseNode:
		return TIfElse{Cond: ToTree(a, t.Condition), Then: ToTree(a, t.ThenBody), Else: ToTree(a, t.ElseBody)}
	case ImportNode:
		return TImport{Target: ToTree(a, t.Target)}
	case LetNode:
		return TLet{Entries: toSetEntries(a, t.Entries)}
	case LetInNode:
		return TLetIn{Entries: toSetEntries(a, t.Entries), Body: ToTree(a, t.Body)}
	case WithNode:
		return TWith{Env: ToTree(a, t.Env), Body: ToTree(a, t.Body)}
	case ApplyNode:
		return TApply{Fn: ToTree(a, t.Fn), Arg: ToTree(a, t.Arg)}
	case UnaryNode:
		return TUnary{Op: t.Op, Operand: ToTree(a, t.Operand)}
	case OperationNode:
		return TOperation{Lhs: ToTree(a, t.Lhs), Op: t.Op, Rhs: ToTree(a, t.Rhs)}
	default:
		panic("ast: ToTree: unhandled node type")
	}
}

func toSetEntries(a *Arena, entries []SetEntry) []TSetEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]TSetEntry, len(entries))
	for i, e := range entries {
		switch se := e.(type) {
		case AssignEntry:
			path := make([]Tree, len(se.Path))
			for j, seg := range se.Path {
				path[j] = ToTree(a, seg.Node)
			}
			out[i] = TAssign{Path: path, Value: ToTree(a, se.Value)}
		case InheritEntry:
			names := make([]string, len(se.Idents))
			for j, id := range se.Idents {
				names[j] = id.Name
			}
			var from Tree
			if se.From != nil {
				from = ToTree(a, se.From.Inner)
			}
			out[i] = TInherit{From: from, Names: names}
		default:
			panic("ast: toSetEntries: unhandled entry type")
		}
	}
	return out
}

func toLambdaArg(a *Arena, arg LambdaArg) TLambdaArg {
	switch la := arg.(type) {
	case IdentArg:
		return TIdentArg{Name: la.Name}
	case PatternArg:
		var entries []TPatEntry
		if len(la.Entries) > 0 {
			entries = make([]TPatEntry, len(la.Entries))
		}
		for i, e := range la.Entries {
			var def Tree
			if e.Default != nil {
				def = ToTree(a, e.Default.Value)
			}
			entries[i] = TPatEntry{Name: e.Name, Default: def}
		}
		var bind *string
		if la.Bind != nil {
			name := la.Bind.Name
			bind = &name
		}
		return TPatternArg{Entries: entries, Bind: bind, Ellipsis: la.Ellipsis != nil}
	default:
		panic("ast: toLambdaArg: unhandled arg type")
	}
}
