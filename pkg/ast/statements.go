package ast

import "strings"

// Declaration binds a Parameter to an optional initializer. A final
// declaration with a non-null initializer is eligible for the block
// builder's reuse table; the single-use inliner considers every
// declaration, final or not.
type Declaration struct {
	base
	Modifiers Modifiers
	Param     *Parameter
	Init      Expression // nil: no initializer
}

func (d *Declaration) statementNode() {}

func (d *Declaration) Accept(v Visitor) Node { return v.VisitDeclaration(d) }

func (d *Declaration) String() string {
	var sb strings.Builder
	if d.Modifiers.Has(ModFinal) {
		sb.WriteString("final ")
	}
	sb.WriteString(d.Param.StaticType().String())
	sb.WriteByte(' ')
	sb.WriteString(d.Param.Name)
	if d.Init != nil {
		sb.WriteString(" = ")
		sb.WriteString(d.Init.String())
	}
	sb.WriteByte(';')
	return sb.String()
}

// Declare builds a Declaration binding param to init (which may be nil).
func Declare(modifiers Modifiers, param *Parameter, init Expression) *Declaration {
	return &Declaration{base: base{kind: KindDeclare, typ: param.StaticType()}, Modifiers: modifiers, Param: param, Init: init}
}

// SafeForReuse reports whether d is eligible for the block builder's reuse
// table: final, with a non-null initializer.
func (d *Declaration) SafeForReuse() bool {
	return d.Modifiers.Has(ModFinal) && d.Init != nil
}

// GotoReturn is a returning statement: `return expr;`, `return;`, or a
// bare `goto`, grouped together because the block builder's append step
// treats a trailing Goto/Return uniformly.
type GotoReturn struct {
	base
	Expr   Expression // nil: no value
	IsGoto bool
}

func (g *GotoReturn) statementNode() {}

func (g *GotoReturn) Accept(v Visitor) Node { return v.VisitGotoReturn(g) }

func (g *GotoReturn) String() string {
	if g.IsGoto {
		return "goto;"
	}
	if g.Expr == nil {
		return "return;"
	}
	return "return " + g.Expr.String() + ";"
}

// Return builds a `return expr;` statement (expr may be nil for bare
// `return;`).
func Return(expr Expression) *GotoReturn {
	return &GotoReturn{base: base{kind: KindReturn}, Expr: expr}
}

// Goto builds a bare goto marker.
func Goto() *GotoReturn {
	return &GotoReturn{base: base{kind: KindGoto}, IsGoto: true}
}

// StatementExpr wraps a bare expression (typically an assignment or a
// call) so it can appear in a statement list. The block builder's append
// step rewrites a trailing Goto/Return into one of these when folding a
// sub-block's result back into its caller.
type StatementExpr struct {
	base
	Expr Expression
}

func (s *StatementExpr) statementNode() {}

func (s *StatementExpr) Accept(v Visitor) Node { return v.VisitStatementExpr(s) }

func (s *StatementExpr) String() string { return s.Expr.String() + ";" }

// NewStatement builds a StatementExpr wrapping expr.
func NewStatement(expr Expression) *StatementExpr {
	return &StatementExpr{base: base{kind: KindStatementExpr}, Expr: expr}
}

// ConditionalStatement is the `if (t0) s0 else if (t1) s1 ... else se`
// chain, stored as a flat `[test0, stmt0, ..., elseStmt?]` list of length
// 2k or 2k+1. Tests/Stmts hold the k (test, branch) pairs in order and
// Else holds the trailing else branch, if any — an equivalent, more
// ergonomic shape; FlatList/FromFlatList convert to and from the raw
// alternating layout for callers that want it literally.
type ConditionalStatement struct {
	base
	Tests []Expression
	Stmts []Statement
	Else  Statement // nil: no else
}

func (cs *ConditionalStatement) statementNode() {}

func (cs *ConditionalStatement) Accept(v Visitor) Node { return v.VisitConditionalStatement(cs) }

func (cs *ConditionalStatement) String() string {
	var sb strings.Builder
	for i, test := range cs.Tests {
		if i == 0 {
			sb.WriteString("if (")
		} else {
			sb.WriteString(" else if (")
		}
		sb.WriteString(test.String())
		sb.WriteString(") ")
		sb.WriteString(cs.Stmts[i].String())
	}
	if cs.Else != nil {
		sb.WriteString(" else ")
		sb.WriteString(cs.Else.String())
	}
	return sb.String()
}

// NewConditionalStatement builds a conditional chain from parallel
// tests/stmts slices plus an optional else branch.
func NewConditionalStatement(tests []Expression, stmts []Statement, els Statement) *ConditionalStatement {
	return &ConditionalStatement{base: base{kind: KindConditionalStatement}, Tests: tests, Stmts: stmts, Else: els}
}

// FlatList renders cs in the raw [test0, stmt0, ..., elseStmt?] layout.
func (cs *ConditionalStatement) FlatList() []Node {
	out := make([]Node, 0, 2*len(cs.Tests)+1)
	for i := range cs.Tests {
		out = append(out, cs.Tests[i], cs.Stmts[i])
	}
	if cs.Else != nil {
		out = append(out, cs.Else)
	}
	return out
}

// FromFlatList builds a ConditionalStatement from the raw layout: a list
// of length 2k (no else) or 2k+1 (with else) alternating test/statement.
func FromFlatList(list []Node) *ConditionalStatement {
	k := len(list) / 2
	tests := make([]Expression, k)
	stmts := make([]Statement, k)
	for i := 0; i < k; i++ {
		tests[i] = list[2*i].(Expression)
		stmts[i] = list[2*i+1].(Statement)
	}
	var els Statement
	if len(list)%2 == 1 {
		els = list[len(list)-1].(Statement)
	}
	return NewConditionalStatement(tests, stmts, els)
}

// Block is an ordered sequence of statements.
type Block struct {
	base
	Stmts []Statement
}

func (bl *Block) statementNode() {}

func (bl *Block) Accept(v Visitor) Node { return v.VisitBlock(bl) }

func (bl *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range bl.Stmts {
		sb.WriteString("  ")
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
	return sb.String()
}

// NewBlock builds a Block wrapping stmts.
func NewBlock(stmts []Statement) *Block {
	return &Block{base: base{kind: KindBlock}, Stmts: stmts}
}

// emptyStatement is the distinguished "rewrite produced nothing" sentinel.
// It is never visited — callers compare against Empty by identity, never
// by structure.
type emptyStatement struct{ base }

func (e *emptyStatement) statementNode()       {}
func (e *emptyStatement) Accept(Visitor) Node  { return e }
func (e *emptyStatement) String() string       { return ";" }

// Empty is the single, identity-comparable empty-statement sentinel.
var Empty Statement = &emptyStatement{base: base{kind: KindEmpty}}

// IsEmpty reports whether s is the Empty sentinel.
func IsEmpty(s Statement) bool { return s == Empty }
