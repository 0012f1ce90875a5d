package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/joshuapare/jsonkit/arena"
	"github.com/joshuapare/jsonkit/ast"
)

// MaxDepth is the maximum number of nested containers accepted before the
// parse fails with KindDepthExceeded. It bounds recursion on
// attacker-controlled input.
const MaxDepth = 1000

// maxMsgLen bounds diagnostic messages so hostile input cannot blow up an
// error string.
const maxMsgLen = 96

var (
	litTrue  = []byte("true")
	litFalse = []byte("false")
	litNull  = []byte("null")
)

// Parse decodes data as exactly one JSON value, allocating the resulting
// tree through b. On failure the returned error is always a *Error and no
// tree is returned, not even a partial one.
func Parse(b *ast.Builder, data []byte) (*ast.Value, error) {
	p := &parser{
		b:    b,
		data: data,
		line: 1,
		col:  1,
	}

	root, perr := p.parseValue()
	if perr != nil {
		return nil, perr
	}
	p.skipWhitespace()
	if p.pos != len(p.data) {
		return nil, p.errorf(KindTrailingGarbage, "unexpected content after JSON value")
	}
	return root, nil
}

// ParseString is Parse for string input.
func ParseString(b *ast.Builder, s string) (*ast.Value, error) {
	return Parse(b, []byte(s))
}

type parser struct {
	b    *ast.Builder
	data []byte
	pos  int
	line int // 1-based
	col  int // 1-based

	depth int // open containers
}

// errorf records the failure position at the moment of the error.
func (p *parser) errorf(kind ErrorKind, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxMsgLen {
		msg = msg[:maxMsgLen]
	}
	return &Error{
		Kind:   kind,
		Msg:    msg,
		Line:   p.line,
		Col:    p.col,
		Offset: p.pos,
	}
}

// fail converts allocation failures bubbling out of the builder or arena
// into positioned parse errors.
func (p *parser) fail(err error) *Error {
	if errors.Is(err, arena.ErrOutOfMemory) {
		return p.errorf(KindOutOfMemory, "out of memory")
	}
	return p.errorf(KindSyntax, "%s", err.Error())
}

// advance moves n bytes forward, tracking line/column across newlines.
func (p *parser) advance(n int) {
	for i := 0; i < n; i++ {
		if p.pos >= len(p.data) {
			break
		}
		if p.data[p.pos] == '\n' {
			p.line++
			p.col = 1
		} else {
			p.col++
		}
		p.pos++
	}
}

// advanceFast moves n bytes forward when the span is known to contain no
// newlines.
func (p *parser) advanceFast(n int) {
	p.pos += n
	p.col += n
}

// skipWhitespace consumes RFC 8259 whitespace only: space, tab, LF, CR.
func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\r':
			p.pos++
			p.col++
		case '\n':
			p.pos++
			p.line++
			p.col = 1
		default:
			return
		}
	}
}

// parseValue parses one value of any kind at the cursor.
func (p *parser) parseValue() (*ast.Value, *Error) {
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil, p.errorf(KindSyntax, "unexpected end of input")
	}

	switch c := p.data[p.pos]; {
	case c == '"':
		s, perr := p.parseStringBytes()
		if perr != nil {
			return nil, perr
		}
		v, err := p.b.NewStringOwned(s)
		if err != nil {
			return nil, p.fail(err)
		}
		return v, nil

	case c == '[':
		v, err := p.b.NewArray()
		if err != nil {
			return nil, p.fail(err)
		}
		return v, p.parseArray(v)

	case c == '{':
		v, err := p.b.NewObject()
		if err != nil {
			return nil, p.fail(err)
		}
		return v, p.parseObject(v)

	case c == '-' || (c >= '0' && c <= '9'):
		f, perr := p.parseNumber()
		if perr != nil {
			return nil, perr
		}
		v, err := p.b.NewNumber(f)
		if err != nil {
			return nil, p.fail(err)
		}
		return v, nil

	case bytes.HasPrefix(p.data[p.pos:], litTrue):
		v, err := p.b.NewBool(true)
		if err != nil {
			return nil, p.fail(err)
		}
		p.advanceFast(len(litTrue))
		return v, nil

	case bytes.HasPrefix(p.data[p.pos:], litFalse):
		v, err := p.b.NewBool(false)
		if err != nil {
			return nil, p.fail(err)
		}
		p.advanceFast(len(litFalse))
		return v, nil

	case bytes.HasPrefix(p.data[p.pos:], litNull):
		v, err := p.b.NewNull()
		if err != nil {
			return nil, p.fail(err)
		}
		p.advanceFast(len(litNull))
		return v, nil

	default:
		return nil, p.errorf(KindSyntax, "unexpected character %q", c)
	}
}

// enter counts one container nesting level.
func (p *parser) enter() *Error {
	p.depth++
	if p.depth > MaxDepth {
		return p.errorf(KindDepthExceeded, "maximum nesting depth %d exceeded", MaxDepth)
	}
	return nil
}

// parseArray parses the elements after an opening '[' into arr.
func (p *parser) parseArray(arr *ast.Value) *Error {
	if perr := p.enter(); perr != nil {
		return perr
	}
	defer func() { p.depth-- }()

	p.advanceFast(1) // consume '['
	p.skipWhitespace()

	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.advanceFast(1)
		return nil
	}

	for p.pos < len(p.data) {
		elem, perr := p.parseValue()
		if perr != nil {
			return perr
		}
		if err := p.b.Append(arr, elem); err != nil {
			return p.fail(err)
		}

		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return p.errorf(KindSyntax, "unexpected end of input in array")
		}

		switch p.data[p.pos] {
		case ']':
			p.advanceFast(1)
			return nil
		case ',':
			p.advanceFast(1)
			p.skipWhitespace()
			if p.pos < len(p.data) && p.data[p.pos] == ']' {
				return p.errorf(KindTrailingComma, "trailing comma in array")
			}
		default:
			return p.errorf(KindSyntax, "expected ',' or ']' in array")
		}
	}
	return p.errorf(KindSyntax, "unclosed array")
}

// parseObject parses the members after an opening '{' into obj.
func (p *parser) parseObject(obj *ast.Value) *Error {
	if perr := p.enter(); perr != nil {
		return perr
	}
	defer func() { p.depth-- }()

	p.advanceFast(1) // consume '{'
	p.skipWhitespace()

	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.advanceFast(1)
		return nil
	}

	for p.pos < len(p.data) {
		if p.data[p.pos] != '"' {
			return p.errorf(KindSyntax, "expected string key")
		}
		key, perr := p.parseStringBytes()
		if perr != nil {
			return perr
		}

		p.skipWhitespace()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			return p.errorf(KindSyntax, "expected ':' after object key")
		}
		p.advanceFast(1)

		val, perr := p.parseValue()
		if perr != nil {
			return perr
		}
		if err := p.b.AddOwned(obj, key, val); err != nil {
			return p.fail(err)
		}

		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return p.errorf(KindSyntax, "unexpected end of input in object")
		}

		switch p.data[p.pos] {
		case '}':
			p.advanceFast(1)
			return nil
		case ',':
			p.advanceFast(1)
			p.skipWhitespace()
			if p.pos < len(p.data) && p.data[p.pos] == '}' {
				return p.errorf(KindTrailingComma, "trailing comma in object")
			}
		default:
			return p.errorf(KindSyntax, "expected ',' or '}' in object")
		}
	}
	return p.errorf(KindSyntax, "unclosed object")
}
