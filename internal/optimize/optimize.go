// Package optimize implements OptimizeVisitor, the peephole rewriter:
// algebraic identities over boolean, comparison, conditional, and
// conversion nodes, plus dead-branch elimination over conditional
// statements.
//
// A Visitor holds no per-traversal state of its own; the passes across
// this module run single-threaded.
package optimize

import (
	"github.com/exprbuild/optree/internal/truth"
	"github.com/exprbuild/optree/pkg/ast"
)

// Visitor is the optimizer. It is stateless: every method is a pure
// function of its argument, so the zero value is ready to use.
type Visitor struct{}

// New returns a ready-to-use OptimizeVisitor.
func New() *Visitor { return &Visitor{} }

// Optimize runs a single bottom-up optimization pass over e and returns
// the rewritten expression.
func Optimize(e ast.Expression) ast.Expression {
	return ast.AcceptExpr(New(), e)
}

// OptimizeStatement runs a single pass over a statement.
func OptimizeStatement(s ast.Statement) ast.Statement {
	return ast.AcceptStmt(New(), s)
}

func (v *Visitor) VisitConstant(c *ast.Constant) ast.Node { return c }
func (v *Visitor) VisitParameter(p *ast.Parameter) ast.Node { return p }

// VisitUnary folds Convert(e, T) -> e when e is already of type T, and
// re-types a converted constant in place; every other unary node passes
// through with its (already rewritten) operand.
func (v *Visitor) VisitUnary(u *ast.Unary) ast.Node {
	operand := ast.AcceptExpr(v, u.Operand)

	if u.Kind() == ast.KindConvert {
		if ast.SameType(operand.StaticType(), u.StaticType()) {
			return operand
		}
		if c, ok := operand.(*ast.Constant); ok {
			return ast.NewConstant(c.Value, u.StaticType())
		}
	}

	if operand == u.Operand {
		return u
	}
	return ast.NewUnary(u.Kind(), operand, u.StaticType())
}

// VisitBinary applies the algebraic rewrites for comparisons and boolean
// connectives to an already-rewritten left/right pair.
func (v *Visitor) VisitBinary(b *ast.Binary) ast.Node {
	left := ast.AcceptExpr(v, b.Left)
	right := ast.AcceptExpr(v, b.Right)

	switch b.Kind() {
	case ast.KindAssign:
		if ast.Equal(left, right) {
			return ast.AcceptExpr(v, left)
		}

	case ast.KindEqual, ast.KindNotEqual:
		isEqual := b.Kind() == ast.KindEqual

		if ast.Equal(left, right) {
			return boolConstant(isEqual)
		}

		lc, lIsConst := left.(*ast.Constant)
		rc, rIsConst := right.(*ast.Constant)
		if lIsConst && rIsConst {
			if lc.IsNull() && rc.IsNull() {
				return boolConstant(isEqual)
			}
			// Not both null, same declared type: the identity check above
			// already absorbed the equal-value case, so what remains is two
			// distinct same-typed literals.
			if ast.SameType(lc.StaticType(), rc.StaticType()) {
				return boolConstant(!isEqual)
			}
		}

		if r := reduce(b.Kind(), left, right); r != nil {
			return r
		}
		if r := reduce(b.Kind(), right, left); r != nil {
			return r
		}

	case ast.KindAndAlso, ast.KindOrElse:
		if r := reduce(b.Kind(), left, right); r != nil {
			return r
		}
		if r := reduce(b.Kind(), right, left); r != nil {
			return r
		}
	}

	if left == b.Left && right == b.Right {
		return b
	}
	return ast.NewBinary(b.Kind(), left, right, b.StaticType())
}

// reduce implements the one-sided `reduce(op, lhs, rhs)` helper: lhs is
// the side inspected for a foldable constant/always-truth value. It
// returns nil when lhs gives no information.
func reduce(op ast.Kind, lhs, rhs ast.Expression) ast.Expression {
	switch op {
	case ast.KindAndAlso:
		switch truth.Always(lhs) {
		case truth.True:
			return rhs
		case truth.False:
			return ast.NewConstant(false, ast.Bool)
		}
	case ast.KindOrElse:
		switch truth.Always(lhs) {
		case truth.True:
			return ast.NewConstant(true, ast.Bool)
		case truth.False:
			return rhs
		}
	case ast.KindEqual:
		if isConstantNull(rhs) && ast.IsPrimitive(lhs.StaticType()) {
			return ast.NewConstant(false, ast.Bool)
		}
		switch truth.Always(lhs) {
		case truth.True:
			return rhs
		case truth.False:
			return ast.Not(rhs)
		}
	case ast.KindNotEqual:
		if isConstantNull(rhs) && ast.IsPrimitive(lhs.StaticType()) {
			return ast.NewConstant(true, ast.Bool)
		}
		switch truth.Always(lhs) {
		case truth.True:
			return ast.Not(rhs)
		case truth.False:
			return rhs
		}
	}
	return nil
}

func isConstantNull(e ast.Expression) bool {
	c, ok := e.(*ast.Constant)
	return ok && c.IsNull()
}

func boolConstant(v bool) *ast.Constant { return ast.NewConstant(v, ast.Bool) }

// VisitTernary applies dead-branch and branch-rotation rewrites to an
// already-rewritten cond/then/else triple.
func (v *Visitor) VisitTernary(t *ast.Ternary) ast.Node {
	cond := ast.AcceptExpr(v, t.Cond)
	then := ast.AcceptExpr(v, t.Then)
	els := ast.AcceptExpr(v, t.Else)

	switch truth.Always(cond) {
	case truth.True:
		return then
	case truth.False:
		return els
	}

	if ast.Equal(then, els) {
		return then
	}

	if not, ok := cond.(*ast.Unary); ok && not.Kind() == ast.KindNot {
		return ast.Conditional(not.Operand, els, then)
	}

	if cond == t.Cond && then == t.Then && els == t.Else {
		return t
	}
	return ast.Conditional(cond, then, els)
}

// VisitTypeBinary passes through with its rewritten operand; there are no
// identities over instance-of tests to fold.
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

// VisitNewExpr rewrites each statement of an anonymous class body, if any;
// there are no algebraic identities over construction itself.
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

// VisitDeclaration rewrites the initializer, if any.
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

// VisitGotoReturn rewrites the returned expression, if any.
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

// VisitStatementExpr rewrites the wrapped expression.
func (v *Visitor) VisitStatementExpr(s *ast.StatementExpr) ast.Node {
	expr := ast.AcceptExpr(v, s.Expr)
	if expr == s.Expr {
		return s
	}
	return ast.NewStatement(expr)
}

// VisitBlock rewrites each statement in place; BlockBuilder is the
// component responsible for dropping/inlining declarations afterward —
// OptimizeVisitor's job here is purely the per-statement peephole pass.
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

// VisitConditionalStatement implements dead-branch elimination over the
// flat if/else-if/else arm chain.
func (v *Visitor) VisitConditionalStatement(cs *ast.ConditionalStatement) ast.Node {
	tests := make([]ast.Expression, len(cs.Tests))
	stmts := make([]ast.Statement, len(cs.Stmts))
	for i := range cs.Tests {
		tests[i] = ast.AcceptExpr(v, cs.Tests[i])
		stmts[i] = ast.AcceptStmt(v, cs.Stmts[i])
	}
	var els ast.Statement
	if cs.Else != nil {
		els = ast.AcceptStmt(v, cs.Else)
	}

	survivingTests := make([]ast.Expression, 0, len(tests))
	survivingStmts := make([]ast.Statement, 0, len(stmts))
	finalElse := els
	terminated := false

loop:
	for i := range tests {
		switch truth.Always(tests[i]) {
		case truth.False:
			continue loop
		case truth.True:
			finalElse = stmts[i]
			terminated = true
		default:
			survivingTests = append(survivingTests, tests[i])
			survivingStmts = append(survivingStmts, stmts[i])
			continue loop
		}
		break loop
	}

	if len(survivingTests) == 0 {
		if finalElse == nil {
			return ast.Empty
		}
		return finalElse
	}

	if !terminated && len(survivingTests) == len(cs.Tests) && unchanged(tests, cs.Tests) && unchangedStmts(stmts, cs.Stmts) && finalElse == cs.Else {
		return cs
	}

	return ast.NewConditionalStatement(survivingTests, survivingStmts, finalElse)
}

func unchanged(a, b []ast.Expression) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func unchangedStmts(a, b []ast.Statement) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
