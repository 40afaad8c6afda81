// Package subst implements SubstituteVariableVisitor, the identity-keyed
// parameter-to-expression substitution visitor.
package subst

import (
	"github.com/exprbuild/optree/internal/rewrite"
	"github.com/exprbuild/optree/pkg/ast"
)

// Map is a substitution map keyed by Parameter identity — a plain Go map
// keyed by *ast.Parameter already hashes by pointer identity, never by
// name or structural content, so no custom identity-hashing is needed
// here the way it would be in a language whose maps hash by value.
type Map map[*ast.Parameter]ast.Expression

// Visitor substitutes every Parameter present in its Map with (a
// recursively substituted copy of) its mapped expression. A Visitor holds
// transient per-traversal state (which parameters are currently being
// expanded) and must not be reused across concurrent traversals — build a
// fresh one per substitution pass.
type Visitor struct {
	subMap Map
	active map[*ast.Parameter]bool
}

// New builds a substitution visitor for subMap.
func New(subMap Map) *Visitor {
	return &Visitor{subMap: subMap, active: make(map[*ast.Parameter]bool, len(subMap))}
}

// Substitute runs subMap once over e.
func Substitute(e ast.Expression, subMap Map) ast.Expression {
	return ast.AcceptExpr(New(subMap), e)
}

// SubstituteStatement runs subMap once over a statement.
func SubstituteStatement(s ast.Statement, subMap Map) ast.Statement {
	return ast.AcceptStmt(New(subMap), s)
}

func (v *Visitor) VisitConstant(c *ast.Constant) ast.Node { return c }

// VisitParameter substitutes p if it is in the map, recursively visiting
// the replacement so that a chain of substitutions (p -> q -> expr) fully
// resolves. Re-entering an active parameter means the substitution map
// describes a cycle, which is a caller bug, not a recoverable condition.
func (v *Visitor) VisitParameter(p *ast.Parameter) ast.Node {
	replacement, ok := v.subMap[p]
	if !ok {
		return p
	}
	if v.active[p] {
		rewrite.RecursiveExpansionf("parameter %q re-entered during substitution", p.Name)
	}
	v.active[p] = true
	result := ast.AcceptExpr(v, replacement)
	v.active[p] = false
	return result
}

// VisitUnary protects the operand of an l-value-modifying unary
// (increment/decrement) from substitution: `t++` must never become `1++`
// just because t is scheduled for inlining.
func (v *Visitor) VisitUnary(u *ast.Unary) ast.Node {
	if ast.ModifiesLvalue(u.Kind()) {
		return u
	}
	operand := ast.AcceptExpr(v, u.Operand)
	if operand == u.Operand {
		return u
	}
	return ast.NewUnary(u.Kind(), operand, u.StaticType())
}

// VisitBinary protects the left side of an assignment/compound-assignment
// from substitution. If that left side is itself a Parameter scheduled for
// inlining, the whole assignment is dead (the variable it writes to is
// about to disappear) and collapses to its right-hand side, visited for
// further substitution.
func (v *Visitor) VisitBinary(b *ast.Binary) ast.Node {
	if ast.ModifiesLvalue(b.Kind()) {
		if p, ok := b.Left.(*ast.Parameter); ok {
			if _, scheduled := v.subMap[p]; scheduled {
				return ast.AcceptExpr(v, b.Right)
			}
		}
		right := ast.AcceptExpr(v, b.Right)
		if right == b.Right {
			return b
		}
		return ast.NewBinary(b.Kind(), b.Left, right, b.StaticType())
	}

	left := ast.AcceptExpr(v, b.Left)
	right := ast.AcceptExpr(v, b.Right)
	if left == b.Left && right == b.Right {
		return b
	}
	return ast.NewBinary(b.Kind(), left, right, b.StaticType())
}

func (v *Visitor) VisitTernary(t *ast.Ternary) ast.Node {
	cond := ast.AcceptExpr(v, t.Cond)
	then := ast.AcceptExpr(v, t.Then)
	els := ast.AcceptExpr(v, t.Else)
	if cond == t.Cond && then == t.Then && els == t.Else {
		return t
	}
	return ast.Conditional(cond, then, els)
}

func (v *Visitor) VisitTypeBinary(tb *ast.TypeBinary) ast.Node {
	expr := ast.AcceptExpr(v, tb.Expr)
	if expr == tb.Expr {
		return tb
	}
	return ast.TypeIs(expr, tb.Target)
}

func (v *Visitor) VisitMember(m *ast.Member) ast.Node {
	if m.Target == nil {
		return m
	}
	target := ast.AcceptExpr(v, m.Target)
	if target == m.Target {
		return m
	}
	return ast.NewMember(target, m.DeclaringType, m.Name, m.StaticType())
}

func (v *Visitor) VisitNewExpr(n *ast.NewExpr) ast.Node {
	if len(n.MemberDecls) == 0 {
		return n
	}
	out := make([]ast.Statement, len(n.MemberDecls))
	changed := false
	for i, s := range n.MemberDecls {
		out[i] = ast.AcceptStmt(v, s)
		if out[i] != s {
			changed = true
		}
	}
	if !changed {
		return n
	}
	return ast.NewNew(n.StaticType(), out)
}

func (v *Visitor) VisitDeclaration(d *ast.Declaration) ast.Node {
	if d.Init == nil {
		return d
	}
	init := ast.AcceptExpr(v, d.Init)
	if init == d.Init {
		return d
	}
	return ast.Declare(d.Modifiers, d.Param, init)
}

func (v *Visitor) VisitGotoReturn(g *ast.GotoReturn) ast.Node {
	if g.Expr == nil {
		return g
	}
	expr := ast.AcceptExpr(v, g.Expr)
	if expr == g.Expr {
		return g
	}
	if g.IsGoto {
		return ast.Goto()
	}
	return ast.Return(expr)
}

func (v *Visitor) VisitStatementExpr(s *ast.StatementExpr) ast.Node {
	expr := ast.AcceptExpr(v, s.Expr)
	if expr == s.Expr {
		return s
	}
	return ast.NewStatement(expr)
}

func (v *Visitor) VisitBlock(bl *ast.Block) ast.Node {
	out := make([]ast.Statement, len(bl.Stmts))
	changed := false
	for i, s := range bl.Stmts {
		out[i] = ast.AcceptStmt(v, s)
		if out[i] != s {
			changed = true
		}
	}
	if !changed {
		return bl
	}
	return ast.NewBlock(out)
}

func (v *Visitor) VisitConditionalStatement(cs *ast.ConditionalStatement) ast.Node {
	tests := make([]ast.Expression, len(cs.Tests))
	stmts := make([]ast.Statement, len(cs.Stmts))
	changed := false
	for i := range cs.Tests {
		tests[i] = ast.AcceptExpr(v, cs.Tests[i])
		stmts[i] = ast.AcceptStmt(v, cs.Stmts[i])
		if tests[i] != cs.Tests[i] || stmts[i] != cs.Stmts[i] {
			changed = true
		}
	}
	var els ast.Statement
	if cs.Else != nil {
		els = ast.AcceptStmt(v, cs.Else)
		if els != cs.Else {
			changed = true
		}
	}
	if !changed {
		return cs
	}
	return ast.NewConditionalStatement(tests, stmts, els)
}
