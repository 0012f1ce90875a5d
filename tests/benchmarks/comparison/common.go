// Package comparison provides benchmark utilities for comparing jsonkit
// against encoding/json and fastjson.
package comparison

import (
	"fmt"
	"strings"

	"github.com/joshuapare/jsonkit/ast"
)

// BenchmarkDocuments defines the JSON documents used across benchmarks.
// Includes small, record-heavy, and deeply nested documents so the codecs
// are compared across allocation profiles, not just raw byte throughput.
var BenchmarkDocuments = []struct {
	Name     string // Short name for benchmark output
	Data     []byte // Document text
	SizeDesc string // Human-readable size description
}{
	{
		Name:     "small",
		Data:     []byte(`{"id":101,"username":"jdoe","role":"admin","active":true}`),
		SizeDesc: "one flat object, ~60B",
	},
	{
		Name:     "records",
		Data:     recordsDocument(500),
		SizeDesc: "array of 500 user records, ~50KB",
	},
	{
		Name:     "nested",
		Data:     nestedDocument(200),
		SizeDesc: "200 levels of nesting",
	},
	{
		Name:     "numbers",
		Data:     numbersDocument(2000),
		SizeDesc: "array of 2000 mixed numbers",
	},
}

// recordsDocument builds an array of synthetic user records.
func recordsDocument(n int) []byte {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb,
			`{"id":%d,"username":"user%04d","email":"user%04d@example.com","active":%v,"score":%d.%d,"tags":["a","b","c"]}`,
			i, i, i, i%3 != 0, i%100, i%10)
	}
	sb.WriteByte(']')
	return []byte(sb.String())
}

// nestedDocument builds n levels of alternating objects and arrays.
func nestedDocument(n int) []byte {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			sb.WriteString(`{"v":`)
		} else {
			sb.WriteByte('[')
		}
	}
	sb.WriteString("42")
	for i := n - 1; i >= 0; i-- {
		if i%2 == 0 {
			sb.WriteByte('}')
		} else {
			sb.WriteByte(']')
		}
	}
	return []byte(sb.String())
}

// numbersDocument builds an array mixing integers, decimals and exponents.
func numbersDocument(n int) []byte {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		switch i % 3 {
		case 0:
			fmt.Fprintf(&sb, "%d", i*7919)
		case 1:
			fmt.Fprintf(&sb, "%d.%04d", i, i%10000)
		default:
			fmt.Fprintf(&sb, "%d.5e%d", i%9, i%30)
		}
	}
	sb.WriteByte(']')
	return []byte(sb.String())
}

// Prevent compiler optimizations from eliminating benchmark code
// These variables are written to by benchmarks to ensure operations aren't optimized away.
var (
	benchValue  *ast.Value
	benchBytes  []byte
	benchAny    any
	benchFloat  float64
	benchString string
	benchErr    error
)
