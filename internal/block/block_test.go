package block_test

import (
	"testing"

	"github.com/exprbuild/optree/internal/block"
	"github.com/exprbuild/optree/internal/printer"
	"github.com/exprbuild/optree/pkg/ast"
	"github.com/gkampitakis/go-snaps/snaps"
)

func TestNewNameAllocatesSmallestUnusedSuffix(t *testing.T) {
	b := block.New(true, nil)
	b.Add(ast.Declare(ast.ModFinal, ast.NewParameter("t", ast.Int), ast.NewConstant(1, ast.Int)))

	if got := b.NewName("t", true); got != "t1" {
		t.Errorf("NewName(t) after t declared = %q, want %q", got, "t1")
	}
}

func TestNewNameForcesUnderscorePrefixWhenNotOptimizing(t *testing.T) {
	b := block.New(true, nil)
	got := b.NewName("t", false)
	if got != "_t" {
		t.Errorf("NewName(t, optimize=false) = %q, want %q", got, "_t")
	}
}

func TestNewNameDoesNotDoublePrefixAlreadyUnderscored(t *testing.T) {
	b := block.New(true, nil)
	got := b.NewName("_t", false)
	if got != "_t" {
		t.Errorf("NewName(_t, optimize=false) = %q, want %q", got, "_t")
	}
}

func TestHasVariableWalksParentChain(t *testing.T) {
	parent := block.New(true, nil)
	parent.Add(ast.Declare(ast.ModFinal, ast.NewParameter("x", ast.Int), ast.NewConstant(1, ast.Int)))
	child := block.New(true, parent)

	if !child.HasVariable("x") {
		t.Fatal("a child builder must see variables declared in its parent")
	}
	if child.HasVariable("y") {
		t.Fatal("an undeclared name must not be reported as present")
	}
}

func TestAddDuplicateVariablePanics(t *testing.T) {
	b := block.New(true, nil)
	p := ast.NewParameter("x", ast.Int)
	b.Add(ast.Declare(ast.ModFinal, p, ast.NewConstant(1, ast.Int)))

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic re-declaring an already-present variable name")
		}
	}()
	b.Add(ast.Declare(ast.ModFinal, ast.NewParameter("x", ast.Int), ast.NewConstant(2, ast.Int)))
}

func TestAppendSimpleExpressionPassesThrough(t *testing.T) {
	b := block.New(true, nil)
	p := ast.NewParameter("x", ast.Int)

	got := b.Append("t", p, true)
	if got != ast.Expression(p) {
		t.Fatal("Append of a bare Parameter must return it unchanged without declaring anything")
	}
	if len(b.ToBlock().Stmts) != 0 {
		t.Fatal("a simple expression must not add any statement to the block")
	}
}

func TestAppendReusesMatchingDeclaration(t *testing.T) {
	b := block.New(true, nil)
	x := ast.NewParameter("x", ast.Int)
	call := ast.NewBinary(ast.KindAdd, x, ast.NewConstant(1, ast.Int), ast.Int)

	first := b.Append("t", call, true)
	second := b.Append("t", ast.NewBinary(ast.KindAdd, x, ast.NewConstant(1, ast.Int), ast.Int), true)

	if first != second {
		t.Fatal("a structurally identical expression must reuse the existing declaration's parameter")
	}

	// Reference the shared parameter twice so its use count survives
	// single-use inlining and the declaration is visible in the final block.
	b.Add(ast.Return(ast.NewBinary(ast.KindAdd, first, second, ast.Int)))

	blk := b.ToBlock()
	if len(blk.Stmts) != 2 {
		t.Fatalf("reuse must not add a second declaration; got %d statements", len(blk.Stmts))
	}
}

func TestToBlockInlinesSingleUseDeclaration(t *testing.T) {
	// final int t = f(x); return t + 1;  ->  return f(x) + 1;
	call := ast.NewNew(ast.Int, nil) // stand-in for an opaque call expression, typed int

	b := block.New(true, nil)
	t1 := ast.NewParameter("t", ast.Int)
	b.Add(ast.Declare(ast.ModFinal, t1, call))
	b.Add(ast.Return(ast.NewBinary(ast.KindAdd, t1, ast.NewConstant(1, ast.Int), ast.Int)))

	blk := b.ToBlock()
	if len(blk.Stmts) != 1 {
		t.Fatalf("single-use declaration should be inlined away, leaving 1 statement; got %d", len(blk.Stmts))
	}
	want := ast.Return(ast.NewBinary(ast.KindAdd, call, ast.NewConstant(1, ast.Int), ast.Int))
	if !ast.Equal(blk.Stmts[0], want) {
		t.Errorf("got %v, want %v", blk.Stmts[0], want)
	}
}

func TestToBlockDropsUnusedDeclaration(t *testing.T) {
	b := block.New(true, nil)
	dead := ast.NewParameter("t", ast.Int)
	b.Add(ast.Declare(ast.ModFinal, dead, ast.NewConstant(1, ast.Int)))
	b.Add(ast.Return(ast.NewConstant(2, ast.Int)))

	blk := b.ToBlock()
	if len(blk.Stmts) != 1 {
		t.Fatalf("an unreferenced declaration must be dropped; got %d statements", len(blk.Stmts))
	}
}

func TestToBlockNeverInlinesUnderscorePrefixedName(t *testing.T) {
	b := block.New(true, nil)
	underscored := ast.NewParameter("_t", ast.Int)
	b.Add(ast.Declare(ast.ModFinal, underscored, ast.NewConstant(1, ast.Int)))
	b.Add(ast.Return(underscored))

	blk := b.ToBlock()
	if len(blk.Stmts) != 2 {
		t.Fatalf("an underscore-prefixed declaration must survive even with a single use; got %d statements", len(blk.Stmts))
	}
}

func TestToBlockNeverInlinesAnonymousBodyDeclaration(t *testing.T) {
	classTyp := ast.NewType("Anon", false)
	body := []ast.Statement{ast.Return(ast.NewConstant(1, ast.Int))}
	anon := ast.NewNew(classTyp, body)

	b := block.New(true, nil)
	p := ast.NewParameter("t", classTyp)
	b.Add(ast.Declare(ast.ModFinal, p, anon))
	b.Add(ast.Return(p))

	blk := b.ToBlock()
	if len(blk.Stmts) != 2 {
		t.Fatalf("a declaration initialized with an anonymous-body New-expression must never be inlined; got %d statements", len(blk.Stmts))
	}
}

func TestAppendBlockMergesWithClashRename(t *testing.T) {
	b := block.New(true, nil)
	outerX := ast.NewParameter("x", ast.Int)
	b.Add(ast.Declare(ast.ModFinal, outerX, ast.NewConstant(1, ast.Int)))

	innerX := ast.NewParameter("x", ast.Int)
	sub := ast.NewBlock([]ast.Statement{
		ast.Declare(ast.ModFinal, innerX, ast.NewConstant(2, ast.Int)),
		ast.Return(innerX),
	})

	result := b.AppendBlock(sub)
	if result == nil {
		t.Fatal("AppendBlock must return the sub-block's trailing result expression")
	}

	blk := b.ToBlock()
	// The sub-block's "x" declaration collides with the outer one and gets
	// renamed to a fresh, simple (constant) expression rather than a new
	// declaration; the outer x=1 is never referenced and is then dropped.
	if len(blk.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1 after clash-rename + zero-use drop of the outer declaration", len(blk.Stmts))
	}
}

func TestClearResetsBuilder(t *testing.T) {
	b := block.New(true, nil)
	b.Add(ast.Declare(ast.ModFinal, ast.NewParameter("x", ast.Int), ast.NewConstant(1, ast.Int)))
	b.Clear()

	if b.HasVariable("x") {
		t.Fatal("Clear must forget previously declared variables")
	}
	if len(b.ToBlock().Stmts) != 0 {
		t.Fatal("Clear must discard accumulated statements")
	}
}

func TestSnapshotInlineSingleUseScenario(t *testing.T) {
	call := ast.NewNew(ast.Int, nil)

	b := block.New(true, nil)
	t1 := ast.NewParameter("t", ast.Int)
	b.Add(ast.Declare(ast.ModFinal, t1, call))
	b.Add(ast.Return(ast.NewBinary(ast.KindAdd, t1, ast.NewConstant(1, ast.Int), ast.Int)))

	got := printer.Print(b.ToBlock())
	snaps.MatchSnapshot(t, "inline_single_use_output", got)
}

func TestSnapshotKeepUnderscoreScenario(t *testing.T) {
	b := block.New(true, nil)
	underscored := ast.NewParameter("_t", ast.Int)
	b.Add(ast.Declare(ast.ModFinal, underscored, ast.NewConstant(1, ast.Int)))
	b.Add(ast.Return(underscored))

	got := printer.Print(b.ToBlock())
	snaps.MatchSnapshot(t, "keep_underscore_output", got)
}
