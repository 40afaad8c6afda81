// Package block implements BlockBuilder: an incremental builder of
// statement blocks that assigns unique names to declared variables,
// shares common subexpressions through a reuse table, and — once asked
// for its final block — use-counts and inlines single-use declarations
// before handing the result to the optimizer for a second pass.
package block

import (
	"fmt"
	"strings"

	"github.com/exprbuild/optree/internal/optimize"
	"github.com/exprbuild/optree/internal/rewrite"
	"github.com/exprbuild/optree/internal/subst"
	"github.com/exprbuild/optree/internal/usecount"
	"github.com/exprbuild/optree/pkg/ast"
)

// neverInline is the sentinel use-count (any value >= 2 behaves
// identically to the real thing, so there's no need for an actual
// infinity) forced onto underscore-prefixed declarations and onto
// declarations whose initializer is a New-expression with an anonymous
// class body.
const neverInline = 2

// Builder accumulates statements for a single block scope. A child
// builder's variables and reuse table are distinct from its parent's, but
// HasVariable and reuse lookups walk the parent chain transitively, so a
// name or subexpression already bound in an enclosing block is visible
// here.
type Builder struct {
	optimizing bool
	parent     *Builder

	statements []ast.Statement
	variables  map[string]bool
	reuse      map[string]*ast.Declaration
}

// New creates a Builder. A non-optimizing builder never inlines, never
// reuses, and passes toBlock's statements through unchanged — useful for
// a scope whose generated code must stay verbatim (e.g. a debug build).
func New(optimizing bool, parent *Builder) *Builder {
	return &Builder{
		optimizing: optimizing,
		parent:     parent,
		variables:  make(map[string]bool),
		reuse:      make(map[string]*ast.Declaration),
	}
}

// HasVariable reports whether name is declared in this builder or any
// ancestor.
func (b *Builder) HasVariable(name string) bool {
	for cur := b; cur != nil; cur = cur.parent {
		if cur.variables[name] {
			return true
		}
	}
	return false
}

// NewName allocates a name that is not yet in use anywhere in the
// builder chain. When optimize is false and suggestion doesn't already
// start with an underscore, the name is forced never-inline by prefixing
// one. The smallest unused integer suffix is appended otherwise (no
// suffix at all for the first attempt).
func (b *Builder) NewName(suggestion string, optimize bool) string {
	name := suggestion
	if !optimize && !strings.HasPrefix(name, "_") {
		name = "_" + name
	}
	if !b.HasVariable(name) {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s%d", name, i)
		if !b.HasVariable(candidate) {
			return candidate
		}
	}
}

// Add appends stmt to the block. A Declaration must name a variable not
// already present anywhere in the builder chain; violating that is a
// caller bug, reported as a fatal DuplicateVariable. A reusable
// Declaration (final, non-null initializer) is also recorded in the
// reuse table, the most recent one winning on a key collision.
func (b *Builder) Add(stmt ast.Statement) {
	if d, ok := stmt.(*ast.Declaration); ok {
		name := d.Param.Name
		if b.HasVariable(name) {
			rewrite.DuplicateVariablef("variable %q already declared", name)
		}
		b.variables[name] = true
		if d.SafeForReuse() {
			b.reuse[normalizedInitKey(d)] = d
		}
	}
	b.statements = append(b.statements, stmt)
}

// Append folds expr into the block and returns the expression a caller
// should use in its place. A simple expression (Parameter, Constant, or
// a Convert over one) is returned as-is without declaring anything. When
// optimizing and optimize are both true and expr matches an entry
// already in the reuse table (up the parent chain), the existing
// Parameter is returned instead of declaring a duplicate. Otherwise a
// fresh final Declaration is emitted and its Parameter returned.
func (b *Builder) Append(name string, expr ast.Expression, optimize bool) ast.Expression {
	b.foldTrailingReturn()

	if isSimple(expr) {
		return expr
	}

	if b.optimizing && optimize {
		if d, ok := b.lookupReuse(signature(expr)); ok {
			return d.Param
		}
	}

	param := ast.NewParameter(b.NewName(name, optimize), expr.StaticType())
	b.Add(ast.Declare(ast.ModFinal, param, expr))
	return param
}

// AppendIfNotNull is Append, except a nil expr short-circuits to the
// null sentinel without touching the block at all.
func (b *Builder) AppendIfNotNull(name string, expr ast.Expression) ast.Expression {
	if expr == nil {
		return ast.NewConstant(nil, ast.Object)
	}
	return b.Append(name, expr, true)
}

// AppendBlock folds a sub-block's statements into this builder and
// returns the expression that represents the sub-block's result: the
// Parameter of a trailing final declaration, the expression of a
// trailing return, or nil if the sub-block ended some other way. A
// declaration whose name collides with one already visible in this
// builder is re-declared under a fresh name (via Append, so it still
// gets reuse-table treatment); every later statement in the sub-block
// sees that rename through a per-merge substitution map.
func (b *Builder) AppendBlock(blk *ast.Block) ast.Expression {
	b.foldTrailingReturn()

	subMap := subst.Map{}
	var result ast.Expression

	for _, raw := range blk.Stmts {
		s := raw
		if len(subMap) > 0 {
			s = subst.SubstituteStatement(s, subMap)
		}

		switch st := s.(type) {
		case *ast.Declaration:
			if b.HasVariable(st.Param.Name) {
				replacement := b.Append(st.Param.Name, st.Init, true)
				subMap[st.Param] = replacement
				result = replacement
			} else {
				b.Add(st)
				result = st.Param
			}
		case *ast.GotoReturn:
			b.Add(st)
			result = st.Expr
		case *ast.StatementExpr:
			b.Add(st)
			result = st.Expr
		default:
			b.Add(st)
			result = nil
		}
	}

	return result
}

// foldTrailingReturn rewrites a trailing Goto/Return(e) into Statement(e),
// discarding the return marker: the caller is folding a prior block's
// tail into this one, and the block's result now flows through e rather
// than terminating control flow here.
func (b *Builder) foldTrailingReturn() {
	n := len(b.statements)
	if n == 0 {
		return
	}
	if gr, ok := b.statements[n-1].(*ast.GotoReturn); ok && gr.Expr != nil {
		b.statements[n-1] = ast.NewStatement(gr.Expr)
	}
}

// ToBlock runs the two-pass optimize (if this builder is optimizing) and
// returns the final Block. The pass is single-fixed-point: it runs once
// per call, on the statements accumulated so far.
func (b *Builder) ToBlock() *ast.Block {
	if !b.optimizing {
		return ast.NewBlock(b.statements)
	}

	var registered []*ast.Parameter
	neverInlineParam := make(map[*ast.Parameter]bool)
	for _, s := range b.statements {
		d, ok := s.(*ast.Declaration)
		if !ok {
			continue
		}
		registered = append(registered, d.Param)
		if strings.HasPrefix(d.Param.Name, "_") {
			neverInlineParam[d.Param] = true
		}
		if ne, ok := d.Init.(*ast.NewExpr); ok && ne.HasAnonymousBody() {
			neverInlineParam[d.Param] = true
		}
	}

	counter := usecount.New(registered)
	for _, s := range b.statements {
		ast.AcceptStmt(counter, s)
	}
	for p := range neverInlineParam {
		counter.SetCount(p, neverInline)
	}

	subMap := subst.Map{}
	out := make([]ast.Statement, 0, len(b.statements))
	for _, s := range b.statements {
		if d, ok := s.(*ast.Declaration); ok {
			switch counter.Count(d.Param) {
			case 0:
				continue
			case 1:
				subMap[d.Param] = normalizedInit(d)
				continue
			}
		}

		rewritten := s
		if len(subMap) > 0 {
			rewritten = subst.SubstituteStatement(rewritten, subMap)
		}
		rewritten = optimize.OptimizeStatement(rewritten)
		if ast.IsEmpty(rewritten) {
			continue
		}
		out = append(out, rewritten)
	}

	return ast.NewBlock(out)
}

// Clear discards every statement, declared name, and reuse-table entry,
// returning the builder to its initial state.
func (b *Builder) Clear() {
	b.statements = nil
	b.variables = make(map[string]bool)
	b.reuse = make(map[string]*ast.Declaration)
}

func (b *Builder) lookupReuse(key string) (*ast.Declaration, bool) {
	for cur := b; cur != nil; cur = cur.parent {
		if d, ok := cur.reuse[key]; ok {
			return d, true
		}
	}
	return nil, false
}

func isSimple(e ast.Expression) bool {
	switch v := e.(type) {
	case *ast.Parameter, *ast.Constant:
		return true
	case *ast.Unary:
		return v.Kind() == ast.KindConvert && isSimple(v.Operand)
	default:
		return false
	}
}

// normalizedInit is the normalized-initializer node for d: the Constant
// null sentinel when there's no initializer, the initializer as-is when
// its type already matches the declared parameter's, or a Convert to the
// declared type otherwise. Keying reuse on this node (rather than the raw
// initializer) keeps two declarations with different declared types from
// sharing a reuse-table slot even when their raw initializers are equal.
func normalizedInit(d *ast.Declaration) ast.Expression {
	if d.Init == nil {
		return ast.NewConstant(nil, d.Param.StaticType())
	}
	if ast.SameType(d.Init.StaticType(), d.Param.StaticType()) {
		return d.Init
	}
	return ast.Convert(d.Init, d.Param.StaticType())
}

func normalizedInitKey(d *ast.Declaration) string {
	return signature(normalizedInit(d))
}

// signature encodes an expression's structure into a string suitable as a
// map key standing in for ast.Equal: same shape, same static type (by
// pointer), and Parameters keyed by their own identity rather than name,
// consistent with how ast.Equal itself treats them.
func signature(e ast.Expression) string {
	if e == nil {
		return "nil"
	}
	switch v := e.(type) {
	case *ast.Constant:
		return fmt.Sprintf("const %p %#v", v.StaticType(), v.Value)
	case *ast.Parameter:
		return fmt.Sprintf("param %p", v)
	case *ast.Unary:
		return fmt.Sprintf("unary %d %p (%s)", v.Kind(), v.StaticType(), signature(v.Operand))
	case *ast.Binary:
		return fmt.Sprintf("binary %d %p (%s) (%s)", v.Kind(), v.StaticType(), signature(v.Left), signature(v.Right))
	case *ast.Ternary:
		return fmt.Sprintf("ternary %p (%s) (%s) (%s)", v.StaticType(), signature(v.Cond), signature(v.Then), signature(v.Else))
	case *ast.TypeBinary:
		return fmt.Sprintf("typeis %p (%s) %p", v.StaticType(), signature(v.Expr), v.Target)
	case *ast.Member:
		target := "nil"
		if v.Target != nil {
			target = signature(v.Target)
		}
		return fmt.Sprintf("member %p (%s) %p %s", v.StaticType(), target, v.DeclaringType, v.Name)
	case *ast.NewExpr:
		// Anonymous class bodies carry statements, not a value shape worth
		// structurally comparing; two New-expressions share a reuse slot
		// only when they are the literal same node.
		return fmt.Sprintf("new %p", v)
	default:
		return fmt.Sprintf("node %p", e)
	}
}
