package parser

import (
	"errors"
	"strconv"
)

// parseNumber parses a number token at the cursor.
//
// The fast path accumulates plain integers by repeated multiply-add and
// skips grammar validation and strconv entirely. It deliberately performs no
// overflow check; digit runs past ~2^53 lose precision the same way the
// reference implementation's did. A token starting with '0' always takes the
// slow path so that leading-zero forms like 01 are rejected by the grammar,
// not accepted by accumulation.
func (p *parser) parseNumber() (float64, *Error) {
	data := p.data
	i := p.pos
	sign := 1.0

	if i < len(data) && data[i] == '-' {
		sign = -1
		i++
	}

	if i < len(data) && data[i] == '0' {
		return p.parseNumberSlow()
	}

	startDigits := i
	fast := 0.0
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		fast = fast*10 + float64(data[i]-'0')
		i++
	}

	if i == len(data) || (data[i] != '.' && data[i] != 'e' && data[i] != 'E') {
		if i == startDigits {
			// No digits after the sign; let the validator produce the error.
			return p.parseNumberSlow()
		}
		p.advanceFast(i - p.pos)
		return fast * sign, nil
	}

	return p.parseNumberSlow()
}

// parseNumberSlow validates the token against the full JSON number grammar
// and only then hands it to strconv. Overflow to +/-Inf is accepted, the way
// strtod accepts it; shape errors are not.
func (p *parser) parseNumberSlow() (float64, *Error) {
	n, ok := scanNumber(p.data[p.pos:])
	if !ok {
		return 0, p.errorf(KindInvalidNumber, "invalid number format")
	}

	f, err := strconv.ParseFloat(string(p.data[p.pos:p.pos+n]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, p.errorf(KindInvalidNumber, "invalid number format")
	}
	p.advanceFast(n)
	return f, nil
}

// scanNumber matches the RFC 8259 number grammar:
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
//
// It returns the token length and whether the prefix is a valid number.
// A leading zero followed by a digit or hex marker is invalid, as are a
// bare sign and missing digits after '.' or an exponent.
func scanNumber(data []byte) (int, bool) {
	i := 0
	if i < len(data) && data[i] == '-' {
		i++
	}
	if i >= len(data) {
		return 0, false
	}

	switch {
	case data[i] == '0':
		i++
		if i < len(data) && (data[i] == 'x' || data[i] == 'X') {
			return 0, false
		}
		if i < len(data) && isDigit(data[i]) {
			return 0, false
		}
	case isDigit(data[i]):
		for i < len(data) && isDigit(data[i]) {
			i++
		}
	default:
		return 0, false
	}

	if i < len(data) && data[i] == '.' {
		i++
		if i >= len(data) || !isDigit(data[i]) {
			return 0, false
		}
		for i < len(data) && isDigit(data[i]) {
			i++
		}
	}

	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		i++
		if i < len(data) && (data[i] == '+' || data[i] == '-') {
			i++
		}
		if i >= len(data) || !isDigit(data[i]) {
			return 0, false
		}
		for i < len(data) && isDigit(data[i]) {
			i++
		}
	}

	return i, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
