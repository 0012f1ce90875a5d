// Package writer renders ast value trees back to JSON text.
//
// # Two-Pass Serialization
//
// Serialize walks the tree twice: the first pass writes into a discarding
// sink that only counts bytes, then a buffer of exactly that size is
// allocated from the arena and the second pass fills it. The output is
// produced with a single allocation and no resizing. Both passes must see
// identical structure; mutating the tree between them is not a supported
// usage.
//
// # Output Rules
//
// Quote, backslash and the short control escapes come out as two-character
// escapes, any other byte below 0x20 as \u00XX with uppercase hex, and
// everything else verbatim; no general Unicode escaping is applied. Finite
// numbers are formatted with 17 significant digits so a float64 round-trips
// exactly; NaN and infinities have no JSON representation and serialize as
// null. Pretty mode indents two spaces per level, compact mode emits no
// whitespace at all, and empty containers are always [] or {}.
package writer
