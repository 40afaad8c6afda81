package ast

import "strings"

// Unary is a one-operand expression: logical negation, a numeric
// conversion, or an l-value-modifying increment/decrement.
type Unary struct {
	base
	Operand Expression
}

func (u *Unary) expressionNode() {}

func (u *Unary) Accept(v Visitor) Node { return v.VisitUnary(u) }

func (u *Unary) String() string {
	op := OperatorText(u.kind)
	switch u.kind {
	case KindConvert:
		return "(" + u.typ.String() + ")" + u.Operand.String()
	case KindPostIncrement, KindPostDecrement:
		return u.Operand.String() + op
	default:
		return op + u.Operand.String()
	}
}

// Not builds a logical-negation node over e.
func Not(e Expression) *Unary {
	return &Unary{base: base{kind: KindNot, typ: Bool}, Operand: e}
}

// Convert builds a conversion of e to static type t.
func Convert(e Expression, t *TypeRef) *Unary {
	return &Unary{base: base{kind: KindConvert, typ: t}, Operand: e}
}

// NewUnary builds a general unary node of kind k over operand, typed t.
func NewUnary(k Kind, operand Expression, t *TypeRef) *Unary {
	return &Unary{base: base{kind: k, typ: t}, Operand: operand}
}

// Binary is a two-operand expression, covering comparisons, boolean
// connectives, arithmetic, and assignment/compound-assignment.
type Binary struct {
	base
	Left  Expression
	Right Expression
}

func (b *Binary) expressionNode() {}

func (b *Binary) Accept(v Visitor) Node { return v.VisitBinary(b) }

func (b *Binary) String() string {
	return b.Left.String() + " " + OperatorText(b.kind) + " " + b.Right.String()
}

// NewBinary builds a general binary node of kind k, typed t.
func NewBinary(k Kind, left, right Expression, t *TypeRef) *Binary {
	return &Binary{base: base{kind: k, typ: t}, Left: left, Right: right}
}

// Equal2 builds an Equal(left, right) node (named to avoid colliding with
// the package-level structural Equal predicate).
func Equal2(left, right Expression) *Binary {
	return NewBinary(KindEqual, left, right, Bool)
}

// NotEqual2 builds a NotEqual(left, right) node.
func NotEqual2(left, right Expression) *Binary {
	return NewBinary(KindNotEqual, left, right, Bool)
}

// AndAlso builds a short-circuiting logical AND.
func AndAlso(left, right Expression) *Binary {
	return NewBinary(KindAndAlso, left, right, Bool)
}

// OrElse builds a short-circuiting logical OR.
func OrElse(left, right Expression) *Binary {
	return NewBinary(KindOrElse, left, right, Bool)
}

// Assign builds x := value, typed like x.
func Assign(x, value Expression) *Binary {
	return NewBinary(KindAssign, x, value, x.StaticType())
}

// Ternary is the `cond ? then : else` conditional expression. Only
// KindConditional is meaningful to the optimizer; TypeBinary-adjacent
// ternary-shaped forms don't exist in this language subset.
type Ternary struct {
	base
	Cond Expression
	Then Expression
	Else Expression
}

func (t *Ternary) expressionNode() {}

func (t *Ternary) Accept(v Visitor) Node { return v.VisitTernary(t) }

func (t *Ternary) String() string {
	return t.Cond.String() + " ? " + t.Then.String() + " : " + t.Else.String()
}

// Conditional builds a ternary expression; its static type is then's
// (then and else are expected to already agree after type checking, which
// happens upstream of this tree).
func Conditional(cond, then, els Expression) *Ternary {
	return &Ternary{base: base{kind: KindConditional, typ: then.StaticType()}, Cond: cond, Then: then, Else: els}
}

// TypeBinary is an instance-of style test: is expression's runtime type
// (assignable to) target.
type TypeBinary struct {
	base
	Expr   Expression
	Target *TypeRef
}

func (tb *TypeBinary) expressionNode() {}

func (tb *TypeBinary) Accept(v Visitor) Node { return v.VisitTypeBinary(tb) }

func (tb *TypeBinary) String() string {
	return tb.Expr.String() + " instanceof " + tb.Target.String()
}

// TypeIs builds an `expr instanceof target` node.
func TypeIs(expr Expression, target *TypeRef) *TypeBinary {
	return &TypeBinary{base: base{kind: KindTypeIs, typ: Bool}, Expr: expr, Target: target}
}

// Member is a (possibly static) member reference, target.Name, used by the
// always-truth oracle to recognize the boxed-boolean constants
// Boolean.TRUE / Boolean.FALSE.
type Member struct {
	base
	Target        Expression // nil for a static member reference
	DeclaringType *TypeRef
	Name          string
}

func (m *Member) expressionNode() {}

func (m *Member) Accept(v Visitor) Node { return v.VisitMember(m) }

func (m *Member) String() string {
	var sb strings.Builder
	if m.Target != nil {
		sb.WriteString(m.Target.String())
		sb.WriteByte('.')
	} else {
		sb.WriteString(m.DeclaringType.String())
		sb.WriteByte('.')
	}
	sb.WriteString(m.Name)
	return sb.String()
}

// NewMember builds a member reference target.name (target nil for a
// static reference).
func NewMember(target Expression, declaringType *TypeRef, name string, t *TypeRef) *Member {
	return &Member{base: base{kind: KindMemberAccess, typ: t}, Target: target, DeclaringType: declaringType, Name: name}
}

// NewStaticMember builds the static member reference declaringType.name,
// e.g. the boxed-boolean sentinels Boolean.TRUE / Boolean.FALSE.
func NewStaticMember(declaringType *TypeRef, name string, t *TypeRef) *Member {
	return &Member{base: base{kind: KindMemberAccess, typ: t}, DeclaringType: declaringType, Name: name}
}

// BoxedTrue and BoxedFalse are the canonical boxed-boolean member
// references the always-truth oracle recognizes.
var (
	BoxedTrue  = NewStaticMember(BoxedBool, "TRUE", BoxedBool)
	BoxedFalse = NewStaticMember(BoxedBool, "FALSE", BoxedBool)
)
