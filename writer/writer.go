package writer

import (
	"math"
	"strconv"

	"github.com/joshuapare/jsonkit/arena"
	"github.com/joshuapare/jsonkit/ast"
)

// Indent is the per-level indentation used in pretty mode.
const Indent = "  "

// Serialize renders v as JSON text in a single arena allocation of exactly
// the output size. With pretty set, output is indented two spaces per level;
// otherwise no whitespace is emitted. Fails only on a nil value or arena
// exhaustion.
func Serialize(a *arena.Arena, v *ast.Value, pretty bool) ([]byte, error) {
	if v == nil {
		return nil, ast.ErrNilValue
	}

	// Pass 1: count.
	var count sink
	count.value(v, 0, pretty)

	buf, err := a.Alloc(count.n)
	if err != nil {
		return nil, err
	}

	// Pass 2: write. Identical walk, now with a destination.
	out := sink{buf: buf}
	out.value(v, 0, pretty)
	return buf, nil
}

// sink accumulates output. With a nil buf it only counts, which is what
// makes the first pass free of allocation and bounds checks against a
// growing buffer.
type sink struct {
	buf []byte
	n   int
}

func (s *sink) byte(c byte) {
	if s.buf != nil {
		s.buf[s.n] = c
	}
	s.n++
}

func (s *sink) string(str string) {
	if s.buf != nil {
		copy(s.buf[s.n:], str)
	}
	s.n += len(str)
}

func (s *sink) bytes(b []byte) {
	if s.buf != nil {
		copy(s.buf[s.n:], b)
	}
	s.n += len(b)
}

func (s *sink) indent(depth int) {
	for i := 0; i < depth; i++ {
		s.string(Indent)
	}
}

func (s *sink) value(v *ast.Value, depth int, pretty bool) {
	switch v.Kind() {
	case ast.Null:
		s.string("null")
	case ast.Bool:
		if v.Bool() {
			s.string("true")
		} else {
			s.string("false")
		}
	case ast.Number:
		s.number(v.Float64())
	case ast.String:
		s.escaped(v.StringBytes())
	case ast.Array:
		s.container(v, depth, pretty, '[', ']', false)
	case ast.Object:
		s.container(v, depth, pretty, '{', '}', true)
	}
}

func (s *sink) container(v *ast.Value, depth int, pretty bool, open, close byte, keyed bool) {
	s.byte(open)
	if first := v.First(); first != nil {
		if pretty {
			s.byte('\n')
		}
		for n := first; n != nil; n = n.Next() {
			if pretty {
				s.indent(depth + 1)
			}
			if keyed {
				s.escaped(n.KeyBytes())
				if pretty {
					s.string(": ")
				} else {
					s.byte(':')
				}
			}
			s.value(n.Value(), depth+1, pretty)
			if n.Next() != nil {
				s.byte(',')
				if pretty {
					s.byte('\n')
				}
			}
		}
		if pretty {
			s.byte('\n')
			s.indent(depth)
		}
	}
	s.byte(close)
}

// number formats with 17 significant digits, enough to reproduce any
// float64 bit-exactly on re-parse. JSON has no encoding for non-finite
// values, so those degrade to null.
func (s *sink) number(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		s.string("null")
		return
	}
	var scratch [32]byte
	s.bytes(strconv.AppendFloat(scratch[:0], f, 'g', 17, 64))
}

const hexUpper = "0123456789ABCDEF"

func (s *sink) escaped(str []byte) {
	s.byte('"')
	for _, c := range str {
		switch c {
		case '"':
			s.string(`\"`)
		case '\\':
			s.string(`\\`)
		case '\b':
			s.string(`\b`)
		case '\f':
			s.string(`\f`)
		case '\n':
			s.string(`\n`)
		case '\r':
			s.string(`\r`)
		case '\t':
			s.string(`\t`)
		default:
			if c < 0x20 {
				s.string(`\u00`)
				s.byte(hexUpper[c>>4])
				s.byte(hexUpper[c&0xF])
			} else {
				s.byte(c)
			}
		}
	}
	s.byte('"')
}
