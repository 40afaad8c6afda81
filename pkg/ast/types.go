package ast

// TypeRef is a static type reference. Types are interned: two TypeRef
// values describe the "same" type iff they are the same pointer, so the
// language's `bool` and `Boolean` (its boxed form) stay distinct by type
// identity even though the always-truth oracle treats a boolean constant
// of either type equivalently.
type TypeRef struct {
	Name      string
	Primitive bool
}

// NewType interns a fresh named type. Hosts embedding this package should
// call this once per distinct type and reuse the pointer, the same way the
// canonical types below are each allocated exactly once.
func NewType(name string, primitive bool) *TypeRef {
	return &TypeRef{Name: name, Primitive: primitive}
}

func (t *TypeRef) String() string {
	if t == nil {
		return "<untyped>"
	}
	return t.Name
}

// IsPrimitive reports whether t is an unboxed primitive (bool, int, ...).
// A nil TypeRef is never primitive.
func IsPrimitive(t *TypeRef) bool {
	return t != nil && t.Primitive
}

// Canonical types covering bool/int/string values in both primitive and
// boxed form. Hosts are free to intern their own with NewType; these exist
// so the optimizer's own tests do not need to.
var (
	Bool      = NewType("bool", true)
	BoxedBool = NewType("Boolean", false)
	Int       = NewType("int", true)
	BoxedInt  = NewType("Integer", false)
	String    = NewType("String", false)
	Void      = NewType("void", true)
	Object    = NewType("Object", false)
)

// SameType reports whether a and b refer to the identical interned type.
func SameType(a, b *TypeRef) bool { return a == b }
