package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/jsonkit/arena"
	"github.com/joshuapare/jsonkit/ast"
)

func parseOne(t *testing.T, input string) (*ast.Value, error) {
	t.Helper()
	b := ast.NewBuilder(arena.New())
	return ParseString(b, input)
}

func mustParse(t *testing.T, input string) *ast.Value {
	t.Helper()
	v, err := parseOne(t, input)
	require.NoError(t, err, "input %q should parse", input)
	return v
}

func mustFail(t *testing.T, input string, kind ErrorKind) *Error {
	t.Helper()
	_, err := parseOne(t, input)
	require.Error(t, err, "input %q should be rejected", input)
	var perr *Error
	require.ErrorAs(t, err, &perr, "parse errors are always *Error")
	assert.Equal(t, kind, perr.Kind, "error kind for %q (got %q)", input, perr.Msg)
	return perr
}

// TestParse_Scalars tests the scalar value forms.
func TestParse_Scalars(t *testing.T) {
	v := mustParse(t, "null")
	assert.Equal(t, ast.Null, v.Kind())

	v = mustParse(t, "true")
	assert.True(t, v.Bool())

	v = mustParse(t, "false")
	assert.Equal(t, ast.Bool, v.Kind())
	assert.False(t, v.Bool())

	v = mustParse(t, `"hello"`)
	assert.Equal(t, "hello", v.String())

	v = mustParse(t, "123")
	assert.Equal(t, float64(123), v.Float64())

	v = mustParse(t, "-4.25e2")
	assert.Equal(t, -425.0, v.Float64())
}

// TestParse_SimpleObject tests the canonical object case.
func TestParse_SimpleObject(t *testing.T) {
	v := mustParse(t, `{"key": 123}`)

	require.Equal(t, ast.Object, v.Kind())
	require.Equal(t, 1, v.Len())
	assert.Equal(t, "key", v.First().Key())
	assert.Equal(t, float64(123), v.Get("key").Float64())
}

// TestParse_NestedStructure tests containers inside containers with order
// preserved.
func TestParse_NestedStructure(t *testing.T) {
	input := `{
		"name": "widget",
		"tags": ["a", "b", "c"],
		"meta": {"version": 2, "stable": true, "notes": null}
	}`
	v := mustParse(t, input)

	assert.Equal(t, "widget", v.Get("name").String())

	tags := v.Get("tags")
	require.Equal(t, 3, tags.Len())
	assert.Equal(t, "b", tags.At(1).String())

	meta := v.Get("meta")
	assert.Equal(t, 2, meta.Get("version").Int())
	assert.True(t, meta.Get("stable").Bool())
	assert.Equal(t, ast.Null, meta.Get("notes").Kind())
}

// TestParse_DuplicateKeys tests that duplicates are kept and Get returns the
// first.
func TestParse_DuplicateKeys(t *testing.T) {
	v := mustParse(t, `{"k": 1, "k": 2}`)

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 1, v.Get("k").Int())
}

// TestParse_EmptyContainers tests [] and {}.
func TestParse_EmptyContainers(t *testing.T) {
	assert.Equal(t, 0, mustParse(t, "[]").Len())
	assert.Equal(t, 0, mustParse(t, "{}").Len())
	assert.Equal(t, 0, mustParse(t, " [ ] ").Len())
	assert.Equal(t, 0, mustParse(t, " { } ").Len())
}

// TestParse_Whitespace tests that only the four RFC whitespace bytes are
// skippable.
func TestParse_Whitespace(t *testing.T) {
	mustParse(t, " \t\r\n 1 \t\r\n ")

	// Vertical tab and form feed are not JSON whitespace.
	mustFail(t, "\v1", KindSyntax)
	mustFail(t, "\f1", KindSyntax)
}

// TestParse_StringEscapes tests the short escapes and unicode escapes.
func TestParse_StringEscapes(t *testing.T) {
	cases := map[string]string{
		`"\u0041"`:           "A",
		`"a\nb"`:             "a\nb",
		`"\"\\\/"`:           `"\/`,
		`"\b\f\n\r\t"`:       "\b\f\n\r\t",
		`"\u00e9"`:           "\u00e9", // 2-byte UTF-8
		`"\u20AC"`:           "\u20ac", // 3-byte UTF-8
		`"mixed \u0041 end"`: "mixed A end",
		`""`:                 "",
	}
	for input, want := range cases {
		v := mustParse(t, input)
		assert.Equal(t, want, v.String(), "input %s", input)
	}
}

// TestParse_SurrogatesDecodeIndependently pins the documented behavior:
// surrogate halves are re-encoded as separate 3-byte sequences, not merged.
func TestParse_SurrogatesDecodeIndependently(t *testing.T) {
	v := mustParse(t, `"\uD834\uDD1E"`)

	got := v.StringBytes()
	require.Len(t, got, 6, "two independent 3-byte encodings")
	assert.Equal(t, []byte{0xED, 0xA0, 0xB4, 0xED, 0xB4, 0x9E}, got)
}

// TestParse_StringErrors tests string rejection cases.
func TestParse_StringErrors(t *testing.T) {
	mustFail(t, `"abc`, KindUnterminatedString)
	mustFail(t, `"ab\`, KindInvalidEscape)
	mustFail(t, `"\q"`, KindInvalidEscape)
	mustFail(t, `"\u12"`, KindInvalidEscape)
	mustFail(t, `"\u12G4"`, KindInvalidEscape)
	mustFail(t, "\"raw\nnewline\"", KindSyntax)
	mustFail(t, "\"tab\there\"", KindSyntax)
}

// TestParse_Numbers tests accepted number forms, both paths.
func TestParse_Numbers(t *testing.T) {
	cases := map[string]float64{
		"0":        0,
		"-0":       0,
		"1":        1,
		"-1":       -1,
		"123456":   123456,
		"0.5":      0.5,
		"-0.25":    -0.25,
		"1e3":      1000,
		"1E3":      1000,
		"1e+3":     1000,
		"1e-2":     0.01,
		"2.5e2":    250,
		"9007199254740991": 9007199254740991, // 2^53-1, fast path exact
	}
	for input, want := range cases {
		v := mustParse(t, input)
		assert.Equal(t, want, v.Float64(), "input %q", input)
	}
}

// TestParse_NumberErrors tests the shapes the grammar must reject.
func TestParse_NumberErrors(t *testing.T) {
	for _, input := range []string{
		"01", "0123", "-01",
		"0x10", "0X10",
		"1.", ".5", "-.5",
		"1e", "1e+", "1e-",
		"-", "--1",
	} {
		t.Run(input, func(t *testing.T) {
			// ".5" opens with a byte no value can start with.
			if strings.HasPrefix(input, ".") {
				mustFail(t, input, KindSyntax)
				return
			}
			mustFail(t, input, KindInvalidNumber)
		})
	}
}

// TestParse_TrailingComma tests explicit trailing comma rejection.
func TestParse_TrailingComma(t *testing.T) {
	mustFail(t, "[1,2,]", KindTrailingComma)
	mustFail(t, "[1, ]", KindTrailingComma)
	mustFail(t, `{"a":1,}`, KindTrailingComma)
	mustFail(t, `{"a":1, }`, KindTrailingComma)
}

// TestParse_ContainerErrors tests malformed containers.
func TestParse_ContainerErrors(t *testing.T) {
	mustFail(t, "[1 2]", KindSyntax)
	mustFail(t, "[1,", KindSyntax)
	mustFail(t, "[", KindSyntax)
	mustFail(t, "{", KindSyntax)
	mustFail(t, `{"a" 1}`, KindSyntax)
	mustFail(t, `{"a":1 "b":2}`, KindSyntax)
	mustFail(t, `{a:1}`, KindSyntax)
	mustFail(t, `{"a":}`, KindSyntax)
	mustFail(t, `{"a"}`, KindSyntax)
	mustFail(t, "]", KindSyntax)
	mustFail(t, "}", KindSyntax)
}

// TestParse_TrailingGarbage tests the one-value-per-call contract.
func TestParse_TrailingGarbage(t *testing.T) {
	mustFail(t, "1 2", KindTrailingGarbage)
	mustFail(t, "{} {}", KindTrailingGarbage)
	mustFail(t, "null x", KindTrailingGarbage)
	mustFail(t, "truefalse", KindTrailingGarbage)

	// Trailing whitespace is fine.
	mustParse(t, "1 \n\t ")
}

// TestParse_EmptyInput tests that empty and whitespace-only input fail.
func TestParse_EmptyInput(t *testing.T) {
	mustFail(t, "", KindSyntax)
	mustFail(t, "   \n  ", KindSyntax)
}

// TestParse_DepthLimit tests the nesting bound: MaxDepth containers parse,
// one more fails.
func TestParse_DepthLimit(t *testing.T) {
	nested := func(n int) string {
		return strings.Repeat("[", n) + strings.Repeat("]", n)
	}

	v, err := parseOne(t, nested(MaxDepth))
	require.NoError(t, err, "%d nested arrays should parse", MaxDepth)
	assert.Equal(t, ast.Array, v.Kind())

	mustFail(t, nested(MaxDepth+1), KindDepthExceeded)
}

// TestParse_ErrorPosition tests 1-based line/column and 0-based offset
// reporting.
func TestParse_ErrorPosition(t *testing.T) {
	perr := mustFail(t, "{\n  \"a\": x\n}", KindSyntax)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 8, perr.Col)
	assert.Equal(t, 9, perr.Offset)

	perr = mustFail(t, "x", KindSyntax)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 1, perr.Col)
	assert.Equal(t, 0, perr.Offset)

	assert.Contains(t, perr.Error(), "line 1, column 1")
}

// TestParse_NoPartialTreeOnFailure tests fail-fast semantics.
func TestParse_NoPartialTreeOnFailure(t *testing.T) {
	v, err := parseOne(t, `{"good": 1, "bad": }`)
	assert.Error(t, err)
	assert.Nil(t, v, "no partial tree on failure")
}

// TestParse_OutOfMemory tests OOM propagation through the parse entry point.
func TestParse_OutOfMemory(t *testing.T) {
	a := arena.WithLimit(64) // too small for the pools
	b := ast.NewBuilder(a)

	_, err := ParseString(b, `{"key": "value"}`)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindOutOfMemory, perr.Kind)
}

// TestParse_ArenaReuse tests repeated parse cycles over one arena.
func TestParse_ArenaReuse(t *testing.T) {
	a := arena.New()
	b := ast.NewBuilder(a)

	for i := 0; i < 50; i++ {
		a.Reset()
		v, err := ParseString(b, `{"n": [1, 2, 3], "s": "text"}`)
		require.NoError(t, err, "cycle %d", i)
		assert.Equal(t, 3, v.Get("n").Len())
	}
}

// TestParse_LargeFastPathInteger pins the unchecked accumulator: a 30-digit
// run parses to an imprecise but finite double instead of failing.
func TestParse_LargeFastPathInteger(t *testing.T) {
	v := mustParse(t, "123456789012345678901234567890")
	f := v.Float64()
	assert.False(t, f != f, "result should not be NaN")
	assert.Greater(t, f, 1e29)
	assert.Less(t, f, 1e30)
}
