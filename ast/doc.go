// Package ast defines the JSON value tree and its builder.
//
// # Overview
//
// A Value is one JSON datum: null, bool, number, string, array or object.
// Arrays and objects hold their members as a singly linked chain of Nodes in
// insertion order; a Node carries a key only when it belongs to an object.
// Every Value, Node and string buffer is allocated through a Builder from
// one arena and lives exactly as long as that arena's current generation.
//
// # Lifetime
//
// Builders stamp each Value with the arena generation at creation time.
// After the arena is reset or released, attaching such a Value reports
// ErrStaleValue instead of silently linking recycled memory into a fresh
// tree. Queries do not carry the arena and are not checked; do not read
// through values that outlived their arena cycle.
//
// # Duplicate Keys and Order
//
// Object membership is ordered and keys are not required to be unique.
// Get returns the first match in insertion order; later duplicates are
// reachable by walking the node chain.
package ast
