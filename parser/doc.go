// Package parser decodes JSON text into ast value trees under strict
// RFC 8259 rules.
//
// # Overview
//
// Parse is a recursive-descent parser over a byte buffer. It allocates every
// value, node and string through the caller's ast.Builder, so a whole parse
// lives and dies with one arena cycle. Exactly one JSON value is accepted
// per call; anything but whitespace after it is rejected.
//
// # Strictness
//
// Only space, tab, line feed and carriage return separate tokens. Raw
// control bytes in strings, unknown escapes, leading-zero numbers, hex
// markers, trailing commas and unbalanced brackets are all hard errors.
// Nesting beyond MaxDepth containers is rejected before recursion can grow
// the stack without bound.
//
// # Fast Paths
//
// Escape-free strings are copied into the arena in a single pass. Numbers
// consisting only of an optional sign and nonzero-led digits are accumulated
// directly into a float64; everything else is validated against the full
// number grammar and converted by strconv. Both fast paths fall back to the
// fully general path rather than guessing.
//
// # Failure
//
// The first error aborts the parse; no partial tree is returned. Every
// failure is a *Error carrying a bounded message, 1-based line and column,
// and the 0-based byte offset of the failure point.
package parser
