package ast

import (
	"fmt"

	"github.com/exprbuild/optree/pkg/token"
)

// Constant is a literal value. Value may be nil, representing the null
// sentinel — a null still carries its declared static type, which both
// structural equality and the optimizer's same-declared-type comparison
// rule look at.
type Constant struct {
	base
	Value any
}

func (c *Constant) expressionNode() {}

func (c *Constant) Accept(v Visitor) Node { return v.VisitConstant(c) }

func (c *Constant) String() string {
	if c.Value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", c.Value)
}

// NewConstant builds a Constant of static type t carrying value. Pass a nil
// value to build the null sentinel for t.
func NewConstant(value any, t *TypeRef) *Constant {
	return &Constant{base: base{kind: KindConstant, typ: t}, Value: value}
}

// NewConstantAt is NewConstant with an explicit source position.
func NewConstantAt(pos token.Position, value any, t *TypeRef) *Constant {
	c := NewConstant(value, t)
	c.pos = pos
	return c
}

// IsNull reports whether c is the null sentinel.
func (c *Constant) IsNull() bool { return c.Value == nil }

// Parameter is a named binding. Two Parameter nodes are equal iff they are
// the same *Parameter: NewParameter always allocates a fresh node, so
// capturing the returned pointer — not the name — is what gives a variable
// its identity through renaming and substitution.
type Parameter struct {
	base
	Name string
}

func (p *Parameter) expressionNode() {}

func (p *Parameter) Accept(v Visitor) Node { return v.VisitParameter(p) }

func (p *Parameter) String() string { return p.Name }

// NewParameter allocates a fresh Parameter with the given name and type.
func NewParameter(name string, t *TypeRef) *Parameter {
	return &Parameter{base: base{kind: KindParameter, typ: t}, Name: name}
}
