package parser

import "fmt"

// ErrorKind classifies parse failures.
type ErrorKind uint8

const (
	// KindSyntax covers unexpected characters, unexpected end of input and
	// missing expected tokens.
	KindSyntax ErrorKind = iota
	// KindUnterminatedString: input ended before the closing quote.
	KindUnterminatedString
	// KindInvalidEscape: unknown or truncated backslash escape.
	KindInvalidEscape
	// KindInvalidNumber: token failed the JSON number grammar.
	KindInvalidNumber
	// KindTrailingComma: a comma immediately before a closing bracket.
	KindTrailingComma
	// KindTrailingGarbage: non-whitespace input after the root value.
	KindTrailingGarbage
	// KindDepthExceeded: more than MaxDepth nested containers.
	KindDepthExceeded
	// KindOutOfMemory: the arena budget was exhausted mid-parse.
	KindOutOfMemory
)

// String returns a stable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindUnterminatedString:
		return "unterminated-string"
	case KindInvalidEscape:
		return "invalid-escape"
	case KindInvalidNumber:
		return "invalid-number"
	case KindTrailingComma:
		return "trailing-comma"
	case KindTrailingGarbage:
		return "trailing-garbage"
	case KindDepthExceeded:
		return "depth-exceeded"
	case KindOutOfMemory:
		return "out-of-memory"
	}
	return "unknown"
}

// Error describes the first failure of a parse: what went wrong and exactly
// where. Line and Col are 1-based, Offset is the 0-based byte offset into
// the input.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Line   int
	Col    int
	Offset int
}

// Error renders the failure in "message at line L, column C" form.
func (e *Error) Error() string {
	return fmt.Sprintf("parser: %s at line %d, column %d (offset %d)", e.Msg, e.Line, e.Col, e.Offset)
}
