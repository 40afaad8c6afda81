// Package ast defines the tagged-variant expression tree the optimizer and
// block builder operate over. There is no parser in front of it: it exists
// purely as the substrate the optimizer, substitution visitor, use counter,
// and block builder rewrite.
package ast

import "github.com/exprbuild/optree/pkg/token"

// Node is the base interface implemented by every expression and statement.
// Accept dispatches to the matching Visitor method so that a rewrite pass
// never needs a type switch of its own.
type Node interface {
	Kind() Kind
	StaticType() *TypeRef
	Pos() token.Position
	Accept(v Visitor) Node
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself being a
// value (though some statements, like Declare, bind a value-producing
// Parameter as a side effect).
type Statement interface {
	Node
	statementNode()
}

// base carries the fields every node needs: its kind tag, its static type,
// and the source position it was built from. Embedding base gives a node
// type Kind(), StaticType(), and Pos() for free.
type base struct {
	typ  *TypeRef
	pos  token.Position
	kind Kind
}

func (b *base) Kind() Kind           { return b.kind }
func (b *base) StaticType() *TypeRef { return b.typ }
func (b *base) Pos() token.Position  { return b.pos }

// Modifiers is a bitset of Declaration modifiers. Only ModFinal is
// meaningful to this core, but the type stays open for a host to add its
// own bits.
type Modifiers uint8

const (
	// ModFinal marks a Declaration as never reassigned after its initializer,
	// making it (given a non-nil initializer) eligible for the reuse table.
	// Single-use inlining does not look at this bit.
	ModFinal Modifiers = 1 << iota
)

func (m Modifiers) Has(bit Modifiers) bool { return m&bit != 0 }
