package ast

import (
	"errors"

	"github.com/joshuapare/jsonkit/arena"
)

var (
	// ErrStaleValue indicates a Value from a previous arena generation was
	// passed to a builder operation. The value's memory has been recycled.
	ErrStaleValue = errors.New("ast: value outlived its arena cycle")

	// ErrNotObject indicates an Add on a non-object Value.
	ErrNotObject = errors.New("ast: add target is not an object")

	// ErrNotArray indicates an Append on a non-array Value.
	ErrNotArray = errors.New("ast: append target is not an array")

	// ErrNilValue indicates a nil Value passed where a member is required.
	ErrNilValue = errors.New("ast: nil value")
)

// Builder allocates Values and Nodes from an arena. All trees produced by
// one Builder share the arena's lifetime; Reset on the arena invalidates
// them in bulk and the Builder keeps working against the new generation.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	a      *arena.Arena
	values *arena.Pool[Value]
	nodes  *arena.Pool[Node]
}

// NewBuilder creates a Builder on a.
func NewBuilder(a *arena.Arena) *Builder {
	return &Builder{
		a:      a,
		values: arena.NewPool[Value](a),
		nodes:  arena.NewPool[Node](a),
	}
}

// Arena returns the arena this Builder allocates from.
func (b *Builder) Arena() *arena.Arena { return b.a }

func (b *Builder) newValue(k Kind) (*Value, error) {
	v, err := b.values.New()
	if err != nil {
		return nil, err
	}
	v.kind = k
	v.gen = b.a.Gen()
	return v, nil
}

// NewNull returns a fresh null Value.
func (b *Builder) NewNull() (*Value, error) {
	return b.newValue(Null)
}

// NewBool returns a fresh boolean Value.
func (b *Builder) NewBool(val bool) (*Value, error) {
	v, err := b.newValue(Bool)
	if err != nil {
		return nil, err
	}
	v.b = val
	return v, nil
}

// NewNumber returns a fresh number Value.
func (b *Builder) NewNumber(f float64) (*Value, error) {
	v, err := b.newValue(Number)
	if err != nil {
		return nil, err
	}
	v.num = f
	return v, nil
}

// NewString returns a fresh string Value. The bytes of s are copied into
// the arena; the caller's string is never aliased.
func (b *Builder) NewString(s string) (*Value, error) {
	return b.NewStringBytes([]byte(s))
}

// NewStringBytes returns a fresh string Value with a copy of p in the
// arena.
func (b *Builder) NewStringBytes(p []byte) (*Value, error) {
	v, err := b.newValue(String)
	if err != nil {
		return nil, err
	}
	buf, err := b.a.Alloc(len(p))
	if err != nil {
		return nil, err
	}
	copy(buf, p)
	v.str = buf
	return v, nil
}

// NewStringOwned returns a fresh string Value that adopts buf without
// copying. buf must already be owned by this Builder's arena; the parser
// uses this for escape-decoded strings it has written in place.
func (b *Builder) NewStringOwned(buf []byte) (*Value, error) {
	v, err := b.newValue(String)
	if err != nil {
		return nil, err
	}
	v.str = buf
	return v, nil
}

// NewArray returns a fresh empty array.
func (b *Builder) NewArray() (*Value, error) {
	return b.newValue(Array)
}

// NewObject returns a fresh empty object.
func (b *Builder) NewObject() (*Value, error) {
	return b.newValue(Object)
}

// link appends a node to a container's chain. The tail pointer keeps this
// O(1) regardless of container size.
func (b *Builder) link(parent *Value, key []byte, val *Value) error {
	n, err := b.nodes.New()
	if err != nil {
		return err
	}
	n.key = key
	n.val = val

	if parent.head == nil {
		parent.head = n
	} else {
		parent.tail.next = n
	}
	parent.tail = n
	return nil
}

func (b *Builder) checkGen(vs ...*Value) error {
	g := b.a.Gen()
	for _, v := range vs {
		if v.gen != g {
			return ErrStaleValue
		}
	}
	return nil
}

// Add appends a (key, val) member to obj. The key is copied into the arena.
// Duplicate keys are allowed and preserved; no uniqueness check is made.
func (b *Builder) Add(obj *Value, key string, val *Value) error {
	if obj == nil || val == nil {
		return ErrNilValue
	}
	if obj.Kind() != Object {
		return ErrNotObject
	}
	if err := b.checkGen(obj, val); err != nil {
		return err
	}
	kbuf, err := b.a.Alloc(len(key))
	if err != nil {
		return err
	}
	copy(kbuf, key)
	return b.link(obj, kbuf, val)
}

// AddOwned is Add with a key that is already owned by this Builder's arena;
// the key bytes are adopted without copying. The parser uses this for keys
// it has just decoded into the arena.
func (b *Builder) AddOwned(obj *Value, key []byte, val *Value) error {
	if obj == nil || val == nil {
		return ErrNilValue
	}
	if obj.Kind() != Object {
		return ErrNotObject
	}
	if err := b.checkGen(obj, val); err != nil {
		return err
	}
	return b.link(obj, key, val)
}

// AddString adds a string member to obj.
func (b *Builder) AddString(obj *Value, key, val string) error {
	v, err := b.NewString(val)
	if err != nil {
		return err
	}
	return b.Add(obj, key, v)
}

// AddNumber adds a number member to obj.
func (b *Builder) AddNumber(obj *Value, key string, val float64) error {
	v, err := b.NewNumber(val)
	if err != nil {
		return err
	}
	return b.Add(obj, key, v)
}

// AddBool adds a boolean member to obj.
func (b *Builder) AddBool(obj *Value, key string, val bool) error {
	v, err := b.NewBool(val)
	if err != nil {
		return err
	}
	return b.Add(obj, key, v)
}

// AddNull adds a null member to obj.
func (b *Builder) AddNull(obj *Value, key string) error {
	v, err := b.NewNull()
	if err != nil {
		return err
	}
	return b.Add(obj, key, v)
}

// Append appends val to arr.
func (b *Builder) Append(arr *Value, val *Value) error {
	if arr == nil || val == nil {
		return ErrNilValue
	}
	if arr.Kind() != Array {
		return ErrNotArray
	}
	if err := b.checkGen(arr, val); err != nil {
		return err
	}
	return b.link(arr, nil, val)
}

// AppendString appends a string element to arr.
func (b *Builder) AppendString(arr *Value, val string) error {
	v, err := b.NewString(val)
	if err != nil {
		return err
	}
	return b.Append(arr, v)
}

// AppendNumber appends a number element to arr.
func (b *Builder) AppendNumber(arr *Value, val float64) error {
	v, err := b.NewNumber(val)
	if err != nil {
		return err
	}
	return b.Append(arr, v)
}

// AppendBool appends a boolean element to arr.
func (b *Builder) AppendBool(arr *Value, val bool) error {
	v, err := b.NewBool(val)
	if err != nil {
		return err
	}
	return b.Append(arr, v)
}

// AppendNull appends a null element to arr.
func (b *Builder) AppendNull(arr *Value) error {
	v, err := b.NewNull()
	if err != nil {
		return err
	}
	return b.Append(arr, v)
}
