package ast

// Kind identifies the variant a Value holds.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the lowercase JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "invalid"
}

// Value is one JSON datum. Values are created through a Builder and must not
// be constructed directly; the zero Value is a null.
type Value struct {
	kind Kind
	gen  uint64

	b   bool
	num float64
	str []byte // arena-owned, NUL-free

	head *Node
	tail *Node
}

// Node is one container member: an optional key (objects only), the member
// value, and a link to the next sibling in insertion order.
type Node struct {
	key  []byte // arena-owned; nil for array elements
	val  *Value
	next *Node
}

// Key returns the member key. Empty for array elements.
func (n *Node) Key() string { return string(n.key) }

// KeyBytes returns the arena-owned key bytes. Callers must not modify or
// retain them past the arena cycle.
func (n *Node) KeyBytes() []byte { return n.key }

// Value returns the member value.
func (n *Node) Value() *Value { return n.val }

// Next returns the next sibling, or nil at the end of the chain.
func (n *Node) Next() *Node { return n.next }

// Kind returns the variant of v. A nil Value reads as Null.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// Bool returns the boolean payload, or false if v is not a Bool.
func (v *Value) Bool() bool {
	if v == nil || v.kind != Bool {
		return false
	}
	return v.b
}

// Float64 returns the numeric payload, or 0 if v is not a Number.
func (v *Value) Float64() float64 {
	if v == nil || v.kind != Number {
		return 0
	}
	return v.num
}

// Int returns the numeric payload truncated to int, or 0 if v is not a
// Number.
func (v *Value) Int() int {
	return int(v.Float64())
}

// StringBytes returns the arena-owned string payload, or nil if v is not a
// String. Callers must not modify or retain the bytes past the arena cycle.
func (v *Value) StringBytes() []byte {
	if v == nil || v.kind != String {
		return nil
	}
	return v.str
}

// String returns a copy of the string payload, or "" if v is not a String.
func (v *Value) String() string {
	return string(v.StringBytes())
}

// First returns the first member of an array or object, or nil if v is
// empty or not a container.
func (v *Value) First() *Node {
	if v == nil || (v.kind != Array && v.kind != Object) {
		return nil
	}
	return v.head
}

// Len returns the number of members of an array or object, walking the
// chain. Zero for scalars.
func (v *Value) Len() int {
	n := 0
	for c := v.First(); c != nil; c = c.next {
		n++
	}
	return n
}

// SetBool overwrites the boolean payload in place. The caller must already
// know v is a Bool; no other state is touched.
func (v *Value) SetBool(b bool) { v.b = b }

// SetFloat64 overwrites the numeric payload in place. The caller must
// already know v is a Number; no other state is touched.
func (v *Value) SetFloat64(f float64) { v.num = f }

// SetNull turns v into a null in place, dropping any payload. Children of a
// container value become unreachable but stay in the arena until it is
// reset.
func (v *Value) SetNull() {
	v.kind = Null
	v.b = false
	v.num = 0
	v.str = nil
	v.head = nil
	v.tail = nil
}
