package ast

import "reflect"

// Equal reports whether a and b are structurally identical: same kind,
// same declared static type, and recursively equal children. Parameter is
// the one exception — two Parameter nodes are equal only if they are the
// same object, never by name, so that the block builder's alpha-renaming
// can tell two differently named copies of "the same" variable apart from
// two distinct variables that happen to share a name.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if !SameType(a.StaticType(), b.StaticType()) {
		return false
	}

	switch av := a.(type) {
	case *Constant:
		bv := b.(*Constant)
		return constantValueEqual(av.Value, bv.Value)
	case *Parameter:
		return a == b
	case *Unary:
		bv := b.(*Unary)
		return Equal(av.Operand, bv.Operand)
	case *Binary:
		bv := b.(*Binary)
		return Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case *Ternary:
		bv := b.(*Ternary)
		return Equal(av.Cond, bv.Cond) && Equal(av.Then, bv.Then) && Equal(av.Else, bv.Else)
	case *TypeBinary:
		bv := b.(*TypeBinary)
		return Equal(av.Expr, bv.Expr) && SameType(av.Target, bv.Target)
	case *Member:
		bv := b.(*Member)
		if !SameType(av.DeclaringType, bv.DeclaringType) || av.Name != bv.Name {
			return false
		}
		return Equal(av.Target, bv.Target)
	case *Declaration:
		bv := b.(*Declaration)
		return av.Modifiers == bv.Modifiers && av.Param == bv.Param && Equal(av.Init, bv.Init)
	case *GotoReturn:
		bv := b.(*GotoReturn)
		return av.IsGoto == bv.IsGoto && Equal(av.Expr, bv.Expr)
	case *StatementExpr:
		bv := b.(*StatementExpr)
		return Equal(av.Expr, bv.Expr)
	case *ConditionalStatement:
		bv := b.(*ConditionalStatement)
		return conditionalStatementEqual(av, bv)
	case *Block:
		bv := b.(*Block)
		return blockEqual(av, bv)
	case *NewExpr:
		bv := b.(*NewExpr)
		if len(av.MemberDecls) != len(bv.MemberDecls) {
			return false
		}
		for i := range av.MemberDecls {
			if !Equal(av.MemberDecls[i], bv.MemberDecls[i]) {
				return false
			}
		}
		return true
	case *emptyStatement:
		return true
	default:
		return a == b
	}
}

func constantValueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

func conditionalStatementEqual(a, b *ConditionalStatement) bool {
	if len(a.Tests) != len(b.Tests) {
		return false
	}
	for i := range a.Tests {
		if !Equal(a.Tests[i], b.Tests[i]) || !Equal(a.Stmts[i], b.Stmts[i]) {
			return false
		}
	}
	return Equal(nilableStatement(a.Else), nilableStatement(b.Else))
}

func blockEqual(a, b *Block) bool {
	if len(a.Stmts) != len(b.Stmts) {
		return false
	}
	for i := range a.Stmts {
		if !Equal(a.Stmts[i], b.Stmts[i]) {
			return false
		}
	}
	return true
}

// nilableStatement lets the nil-vs-nil branch of Equal handle a possibly
// absent else/branch without a typed-nil interface trap.
func nilableStatement(s Statement) Node {
	if s == nil {
		return nil
	}
	return s
}
