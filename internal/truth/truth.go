// Package truth implements the always-truth oracle: a narrow classifier
// that recognizes only the four canonical true/false forms an
// already-optimized expression can take.
package truth

import "github.com/exprbuild/optree/pkg/ast"

// Value is the oracle's three-valued answer.
type Value int

const (
	Unknown Value = iota
	True
	False
)

// Always classifies e as definitely true, definitely false, or unknown.
// It assumes e has already been run through OptimizeVisitor, so that other
// truthy forms (like `1 == 1`) have already folded down to a literal — the
// oracle deliberately does not evaluate arbitrary boolean subtrees.
func Always(e ast.Expression) Value {
	switch {
	case isBoolConstant(e, false):
		return False
	case isBoolConstant(e, true):
		return True
	default:
		return Unknown
	}
}

func isBoolConstant(e ast.Expression, want bool) bool {
	if c, ok := e.(*ast.Constant); ok {
		if b, ok := c.Value.(bool); ok {
			return b == want
		}
		return false
	}
	if want {
		return ast.Equal(e, ast.BoxedTrue)
	}
	return ast.Equal(e, ast.BoxedFalse)
}
