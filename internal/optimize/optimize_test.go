package optimize_test

import (
	"testing"

	"github.com/exprbuild/optree/internal/optimize"
	"github.com/exprbuild/optree/pkg/ast"
	"github.com/google/go-cmp/cmp"
)

var nodeEqual = cmp.Comparer(func(a, b ast.Node) bool { return ast.Equal(a, b) })

func requireEqual(t *testing.T, got, want ast.Node) {
	t.Helper()
	if !ast.Equal(got, want) {
		t.Errorf("got %v, want %v (structurally unequal)", got, want)
	}
}

func TestVisitUnaryConvert(t *testing.T) {
	x := ast.NewParameter("x", ast.Int)

	// Convert(e, T) -> e when already T.
	got := optimize.Optimize(ast.Convert(x, ast.Int))
	if got != ast.Expression(x) {
		t.Errorf("Convert to the same type should fold to the operand by identity, got %v", got)
	}

	// Convert(Constant(v,_), T) -> Constant(v, T).
	got = optimize.Optimize(ast.Convert(ast.NewConstant(1, ast.Int), ast.BoxedInt))
	requireEqual(t, got, ast.NewConstant(1, ast.BoxedInt))
}

func TestVisitBinarySelfAssign(t *testing.T) {
	x := ast.NewParameter("x", ast.Int)
	got := optimize.Optimize(ast.Assign(x, x))
	if got != ast.Expression(x) {
		t.Errorf("Assign(x, x) should fold to x by identity, got %v", got)
	}
}

func TestVisitBinaryEqualityScenarios(t *testing.T) {
	// return 1 == 1; -> true
	got := optimize.Optimize(ast.Equal2(ast.NewConstant(1, ast.Int), ast.NewConstant(1, ast.Int)))
	requireEqual(t, got, ast.NewConstant(true, ast.Bool))

	// return (int x) == null; -> false (primitive can never equal null)
	x := ast.NewParameter("x", ast.Int)
	got = optimize.Optimize(ast.Equal2(x, ast.NewConstant(nil, ast.Int)))
	requireEqual(t, got, ast.NewConstant(false, ast.Bool))

	// 1 == 2 -> false; 1 != 2 -> true (distinct same-typed literals)
	got = optimize.Optimize(ast.Equal2(ast.NewConstant(1, ast.Int), ast.NewConstant(2, ast.Int)))
	requireEqual(t, got, ast.NewConstant(false, ast.Bool))
	got = optimize.Optimize(ast.NotEqual2(ast.NewConstant(1, ast.Int), ast.NewConstant(2, ast.Int)))
	requireEqual(t, got, ast.NewConstant(true, ast.Bool))

	// null == "a" with both declared String -> false (same declared type,
	// not both null)
	got = optimize.Optimize(ast.Equal2(ast.NewConstant(nil, ast.String), ast.NewConstant("a", ast.String)))
	requireEqual(t, got, ast.NewConstant(false, ast.Bool))

	// return (Integer x) == null; -> unchanged (boxed, not primitive)
	bx := ast.NewParameter("x", ast.BoxedInt)
	eq := ast.Equal2(bx, ast.NewConstant(nil, ast.BoxedInt))
	got = optimize.Optimize(eq)
	if !ast.Equal(got, eq) {
		t.Errorf("boxed x == null should not fold, got %v", got)
	}
}

func TestVisitBinaryLogicalScenarios(t *testing.T) {
	b := ast.NewParameter("bool", ast.Bool)

	// return false && bool; -> false
	got := optimize.Optimize(ast.AndAlso(ast.NewConstant(false, ast.Bool), b))
	requireEqual(t, got, ast.NewConstant(false, ast.Bool))

	// return null && bool; -> unchanged (null is neither true nor false)
	andNull := ast.AndAlso(ast.NewConstant(nil, ast.BoxedBool), b)
	got = optimize.Optimize(andNull)
	if !ast.Equal(got, andNull) {
		t.Errorf("null && bool should not fold, got %v", got)
	}
}

func TestVisitTernaryScenarios(t *testing.T) {
	// return true ? 1 : 2; -> 1
	got := optimize.Optimize(ast.Conditional(ast.NewConstant(true, ast.Bool), ast.NewConstant(1, ast.Int), ast.NewConstant(2, ast.Int)))
	requireEqual(t, got, ast.NewConstant(1, ast.Int))

	// return !bool ? 1 : 2; -> bool ? 2 : 1 (Not-rotation)
	b := ast.NewParameter("bool", ast.Bool)
	got = optimize.Optimize(ast.Conditional(ast.Not(b), ast.NewConstant(1, ast.Int), ast.NewConstant(2, ast.Int)))
	requireEqual(t, got, ast.Conditional(b, ast.NewConstant(2, ast.Int), ast.NewConstant(1, ast.Int)))
}

func TestVisitTernaryNested(t *testing.T) {
	// ((1==2?3:4) != (5!=6?4:8)) ? 9 : 10; -> 10
	// 1==2 -> false, so (false?3:4) -> 4.
	// 5!=6 -> true, so (true?4:8) -> 4.
	// 4 != 4 -> false, so outer ternary -> 10.
	inner1 := ast.Conditional(ast.Equal2(ast.NewConstant(1, ast.Int), ast.NewConstant(2, ast.Int)), ast.NewConstant(3, ast.Int), ast.NewConstant(4, ast.Int))
	inner2 := ast.Conditional(ast.NotEqual2(ast.NewConstant(5, ast.Int), ast.NewConstant(6, ast.Int)), ast.NewConstant(4, ast.Int), ast.NewConstant(8, ast.Int))
	outer := ast.Conditional(ast.NotEqual2(inner1, inner2), ast.NewConstant(9, ast.Int), ast.NewConstant(10, ast.Int))

	got := optimize.Optimize(outer)
	requireEqual(t, got, ast.NewConstant(10, ast.Int))
}

func TestVisitConditionalStatementDeadBranches(t *testing.T) {
	b := ast.NewParameter("bool", ast.Bool)
	cs := ast.NewConditionalStatement(
		[]ast.Expression{b, ast.NewConstant(false, ast.Bool), ast.NewConstant(true, ast.Bool)},
		[]ast.Statement{
			ast.Return(ast.NewConstant(1, ast.Int)),
			ast.Return(ast.NewConstant(2, ast.Int)),
			ast.Return(ast.NewConstant(4, ast.Int)),
		},
		ast.Return(ast.NewConstant(5, ast.Int)),
	)

	got := optimize.OptimizeStatement(cs)
	want := ast.NewConditionalStatement(
		[]ast.Expression{b},
		[]ast.Statement{ast.Return(ast.NewConstant(1, ast.Int))},
		ast.Return(ast.NewConstant(4, ast.Int)),
	)
	requireEqual(t, got, want)
}

func TestVisitConditionalStatementAllFalseCollapsesToElse(t *testing.T) {
	cs := ast.NewConditionalStatement(
		[]ast.Expression{ast.NewConstant(false, ast.Bool)},
		[]ast.Statement{ast.Return(ast.NewConstant(1, ast.Int))},
		ast.Return(ast.NewConstant(2, ast.Int)),
	)
	got := optimize.OptimizeStatement(cs)
	requireEqual(t, got, ast.Return(ast.NewConstant(2, ast.Int)))
}

func TestVisitConditionalStatementAllFalseNoElseCollapsesToEmpty(t *testing.T) {
	cs := ast.NewConditionalStatement(
		[]ast.Expression{ast.NewConstant(false, ast.Bool)},
		[]ast.Statement{ast.Return(ast.NewConstant(1, ast.Int))},
		nil,
	)
	got := optimize.OptimizeStatement(cs)
	if !ast.IsEmpty(got) {
		t.Errorf("expected the empty-statement sentinel, got %v", got)
	}
}

func TestVisitConditionalStatementUnchangedPreservesIdentity(t *testing.T) {
	b := ast.NewParameter("bool", ast.Bool)
	cs := ast.NewConditionalStatement(
		[]ast.Expression{b},
		[]ast.Statement{ast.Return(ast.NewConstant(1, ast.Int))},
		ast.Return(ast.NewConstant(2, ast.Int)),
	)
	got := optimize.OptimizeStatement(cs)
	if got != ast.Statement(cs) {
		t.Errorf("a conditional statement with no foldable test must be returned by identity")
	}
}

func TestIdempotence(t *testing.T) {
	b := ast.NewParameter("bool", ast.Bool)
	exprs := []ast.Expression{
		ast.Equal2(ast.NewConstant(1, ast.Int), ast.NewConstant(1, ast.Int)),
		ast.Conditional(ast.Not(b), ast.NewConstant(1, ast.Int), ast.NewConstant(2, ast.Int)),
		ast.AndAlso(ast.NewConstant(false, ast.Bool), b),
	}
	for _, e := range exprs {
		once := optimize.Optimize(e)
		twice := optimize.Optimize(once)
		if diff := cmp.Diff(once, twice, nodeEqual); diff != "" {
			t.Errorf("optimize is not idempotent for %v (-once +twice):\n%s", e, diff)
		}
	}
}
