package ast

import "bytes"

// Get returns the value of the first member of v whose key equals key, in
// insertion order. It returns nil when v is not an object or no member
// matches; it never fails. The scan is linear.
func (v *Value) Get(key string) *Value {
	if v.Kind() != Object {
		return nil
	}
	for n := v.head; n != nil; n = n.next {
		if string(n.key) == key {
			return n.val
		}
	}
	return nil
}

// GetBytes is Get with a byte-slice key, avoiding a conversion when the key
// is already raw bytes.
func (v *Value) GetBytes(key []byte) *Value {
	if v.Kind() != Object {
		return nil
	}
	for n := v.head; n != nil; n = n.next {
		if bytes.Equal(n.key, key) {
			return n.val
		}
	}
	return nil
}

// At returns the element of v at index (counting from 0), or nil when v is
// not an array or index is out of range; it never fails.
func (v *Value) At(index int) *Value {
	if v.Kind() != Array || index < 0 {
		return nil
	}
	i := 0
	for n := v.head; n != nil; n = n.next {
		if i == index {
			return n.val
		}
		i++
	}
	return nil
}
