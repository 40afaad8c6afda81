// Package usecount implements UseCounter, the reference-counting visitor:
// it counts textual mentions of a registered set of Parameters, ignoring
// any Parameter that is not registered (a free variable captured from an
// outer block).
package usecount

import "github.com/exprbuild/optree/pkg/ast"

// Counter counts references to a fixed set of registered parameters. A
// Counter is built fresh per BlockBuilder.toBlock pass and discarded
// afterward; it is not reusable across traversals.
type Counter struct {
	counts     map[*ast.Parameter]int
	registered map[*ast.Parameter]bool
}

// New builds a Counter that will count references to exactly the
// parameters in registered.
func New(registered []*ast.Parameter) *Counter {
	c := &Counter{
		counts:     make(map[*ast.Parameter]int, len(registered)),
		registered: make(map[*ast.Parameter]bool, len(registered)),
	}
	for _, p := range registered {
		c.registered[p] = true
		c.counts[p] = 0
	}
	return c
}

// Count returns the number of visited references to p. A parameter never
// registered with this Counter always reads as zero.
func (c *Counter) Count(p *ast.Parameter) int { return c.counts[p] }

// SetCount overrides p's count directly — used by BlockBuilder to force a
// sentinel "never inline" count for underscore-prefixed names and
// anonymous-class initializers.
func (c *Counter) SetCount(p *ast.Parameter, n int) { c.counts[p] = n }

// Visit walks s, tallying references to every registered parameter.
func Visit(s ast.Statement, registered []*ast.Parameter) *Counter {
	c := New(registered)
	ast.AcceptStmt(c, s)
	return c
}

func (c *Counter) VisitConstant(n *ast.Constant) ast.Node { return n }

// VisitParameter increments p's count if p is registered. A
// modifiesLvalue Binary targeting a registered parameter is visited as an
// ordinary reference — there is no decrement path for assignment targets.
// Every textual mention counts, including the left-hand side of an
// assignment.
func (c *Counter) VisitParameter(p *ast.Parameter) ast.Node {
	if c.registered[p] {
		c.counts[p]++
	}
	return p
}

func (c *Counter) VisitUnary(u *ast.Unary) ast.Node {
	ast.AcceptExpr(c, u.Operand)
	return u
}

func (c *Counter) VisitBinary(b *ast.Binary) ast.Node {
	ast.AcceptExpr(c, b.Left)
	ast.AcceptExpr(c, b.Right)
	return b
}

func (c *Counter) VisitTernary(t *ast.Ternary) ast.Node {
	ast.AcceptExpr(c, t.Cond)
	ast.AcceptExpr(c, t.Then)
	ast.AcceptExpr(c, t.Else)
	return t
}

func (c *Counter) VisitTypeBinary(tb *ast.TypeBinary) ast.Node {
	ast.AcceptExpr(c, tb.Expr)
	return tb
}

func (c *Counter) VisitMember(m *ast.Member) ast.Node {
	if m.Target != nil {
		ast.AcceptExpr(c, m.Target)
	}
	return m
}

func (c *Counter) VisitNewExpr(n *ast.NewExpr) ast.Node {
	for _, s := range n.MemberDecls {
		ast.AcceptStmt(c, s)
	}
	return n
}

func (c *Counter) VisitDeclaration(d *ast.Declaration) ast.Node {
	if d.Init != nil {
		ast.AcceptExpr(c, d.Init)
	}
	return d
}

func (c *Counter) VisitGotoReturn(g *ast.GotoReturn) ast.Node {
	if g.Expr != nil {
		ast.AcceptExpr(c, g.Expr)
	}
	return g
}

func (c *Counter) VisitStatementExpr(s *ast.StatementExpr) ast.Node {
	ast.AcceptExpr(c, s.Expr)
	return s
}

func (c *Counter) VisitBlock(bl *ast.Block) ast.Node {
	for _, s := range bl.Stmts {
		ast.AcceptStmt(c, s)
	}
	return bl
}

func (c *Counter) VisitConditionalStatement(cs *ast.ConditionalStatement) ast.Node {
	for i := range cs.Tests {
		ast.AcceptExpr(c, cs.Tests[i])
		ast.AcceptStmt(c, cs.Stmts[i])
	}
	if cs.Else != nil {
		ast.AcceptStmt(c, cs.Else)
	}
	return cs
}
