package parser

// parseStringBytes parses a quoted string at the cursor and returns its
// decoded bytes, owned by the arena. Used for both string values and object
// keys.
//
// The scan pass finds the closing quote and notes whether any escape
// occurred. Escape-free strings are copied verbatim in one pass; otherwise a
// decode pass rewrites the escapes. The decoded form is never longer than
// the raw span, so one allocation of the raw length always suffices.
func (p *parser) parseStringBytes() ([]byte, *Error) {
	p.advanceFast(1) // consume opening quote

	start := p.pos
	scan := p.pos
	hasEscapes := false

	for scan < len(p.data) {
		c := p.data[scan]
		if c == '"' {
			break
		}
		if c == '\\' {
			hasEscapes = true
			scan++
			if scan >= len(p.data) {
				return nil, p.errorf(KindInvalidEscape, "unterminated escape")
			}
		} else if c < 0x20 {
			return nil, p.errorf(KindSyntax, "control character in string")
		}
		scan++
	}
	if scan >= len(p.data) {
		return nil, p.errorf(KindUnterminatedString, "unterminated string")
	}

	raw := p.data[start:scan]

	if !hasEscapes {
		buf, err := p.b.Arena().Alloc(len(raw))
		if err != nil {
			return nil, p.fail(err)
		}
		copy(buf, raw)
		p.advanceFast(len(raw) + 1) // content plus closing quote
		return buf, nil
	}

	buf, err := p.b.Arena().Alloc(len(raw))
	if err != nil {
		return nil, p.fail(err)
	}
	out := buf[:0]

	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' {
			out = append(out, raw[i])
			continue
		}
		i++
		switch raw[i] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case '/':
			out = append(out, '/')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			cp := 0
			for k := 0; k < 4; k++ {
				i++
				if i >= len(raw) {
					return nil, p.errorf(KindInvalidEscape, "truncated unicode escape")
				}
				d := hexDigit(raw[i])
				if d < 0 {
					return nil, p.errorf(KindInvalidEscape, "invalid unicode escape character")
				}
				cp = cp<<4 | d
			}
			out = appendCodePoint(out, cp)
		default:
			return nil, p.errorf(KindInvalidEscape, "invalid escape sequence \\%c", raw[i])
		}
	}

	p.advanceFast(len(raw) + 1)
	return out, nil
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// appendCodePoint re-encodes a \uXXXX code point as UTF-8. Escapes carry at
// most 16 bits, so the output is 1-3 bytes. Each escape is decoded
// independently; UTF-16 surrogate halves are not merged.
func appendCodePoint(out []byte, cp int) []byte {
	switch {
	case cp <= 0x7F:
		return append(out, byte(cp))
	case cp <= 0x7FF:
		return append(out,
			byte(0xC0|cp>>6),
			byte(0x80|cp&0x3F))
	default:
		return append(out,
			byte(0xE0|cp>>12),
			byte(0x80|cp>>6&0x3F),
			byte(0x80|cp&0x3F))
	}
}
