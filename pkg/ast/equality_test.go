package ast_test

import (
	"testing"

	"github.com/exprbuild/optree/pkg/ast"
	"github.com/google/go-cmp/cmp"
)

func TestEqualConstants(t *testing.T) {
	tests := []struct {
		name string
		a, b *ast.Constant
		want bool
	}{
		{"same int", ast.NewConstant(1, ast.Int), ast.NewConstant(1, ast.Int), true},
		{"different int", ast.NewConstant(1, ast.Int), ast.NewConstant(2, ast.Int), false},
		{"different type", ast.NewConstant(1, ast.Int), ast.NewConstant(1, ast.BoxedInt), false},
		{"both null", ast.NewConstant(nil, ast.Int), ast.NewConstant(nil, ast.Int), true},
		{"null vs value", ast.NewConstant(nil, ast.Int), ast.NewConstant(0, ast.Int), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualParameterIsIdentity(t *testing.T) {
	p1 := ast.NewParameter("x", ast.Int)
	p2 := ast.NewParameter("x", ast.Int)

	if ast.Equal(p1, p2) {
		t.Fatal("two distinct Parameters with the same name and type must not be Equal")
	}
	if !ast.Equal(p1, p1) {
		t.Fatal("a Parameter must be Equal to itself")
	}
}

func TestEqualStructuralRecursion(t *testing.T) {
	x := ast.NewParameter("x", ast.Int)
	a := ast.NewBinary(ast.KindAdd, x, ast.NewConstant(1, ast.Int), ast.Int)
	b := ast.NewBinary(ast.KindAdd, x, ast.NewConstant(1, ast.Int), ast.Int)

	if !ast.Equal(a, b) {
		t.Fatal("structurally identical Binary trees over the same Parameter must be Equal")
	}

	c := ast.NewBinary(ast.KindAdd, x, ast.NewConstant(2, ast.Int), ast.Int)
	if ast.Equal(a, c) {
		t.Fatal("Binary trees with different constant operands must not be Equal")
	}
}

func TestEqualAgreesWithGoCmpOnParameterIdentity(t *testing.T) {
	paramComparer := cmp.Comparer(func(a, b *ast.Parameter) bool { return a == b })

	x := ast.NewParameter("x", ast.Int)
	y := ast.NewParameter("x", ast.Int) // same name and type, distinct identity

	if !cmp.Equal(x, x, paramComparer) {
		t.Fatal("go-cmp with an identity Comparer should agree a Parameter equals itself")
	}
	if cmp.Equal(x, y, paramComparer) {
		t.Fatal("go-cmp with an identity Comparer must not equate two distinct Parameters sharing a name")
	}
	if ast.Equal(x, y) {
		t.Fatal("ast.Equal must agree: distinct Parameters are never Equal regardless of name")
	}
}

func TestIsEmptySentinel(t *testing.T) {
	if !ast.IsEmpty(ast.Empty) {
		t.Fatal("ast.Empty must report IsEmpty")
	}
	other := ast.NewStatement(ast.NewConstant(1, ast.Int))
	if ast.IsEmpty(other) {
		t.Fatal("an ordinary statement must not report IsEmpty")
	}
}
