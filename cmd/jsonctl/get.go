package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/jsonkit/arena"
	"github.com/joshuapare/jsonkit/ast"
	"github.com/joshuapare/jsonkit/internal/jsonfile"
	"github.com/joshuapare/jsonkit/parser"
	"github.com/joshuapare/jsonkit/writer"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Extract a value by path",
	Long: `Get parses a JSON document and prints the value at a dotted path as
compact JSON. Object members are addressed by key, array elements by
[index]:

  jsonctl get config.json server.hosts[0].port`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

// pathStep is either an object key or an array index.
type pathStep struct {
	key   string
	index int
	isKey bool
}

// parsePath splits a dotted path such as "a.b[2].c" into steps.
func parsePath(path string) ([]pathStep, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}
	var steps []pathStep
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("empty segment in path %q", path)
		}
		key := part
		var indexes []int
		for {
			open := strings.IndexByte(key, '[')
			if open < 0 {
				break
			}
			end := strings.IndexByte(key[open:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unclosed [ in path segment %q", part)
			}
			n, err := strconv.Atoi(key[open+1 : open+end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("bad array index in path segment %q", part)
			}
			indexes = append(indexes, n)
			key = key[:open] + key[open+end+1:]
		}
		if key != "" {
			steps = append(steps, pathStep{key: key, isKey: true})
		}
		for _, n := range indexes {
			steps = append(steps, pathStep{index: n})
		}
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	return steps, nil
}

// resolvePath walks the steps from root, returning nil when any step
// misses or hits a value of the wrong kind.
func resolvePath(root *ast.Value, steps []pathStep) *ast.Value {
	v := root
	for _, s := range steps {
		if s.isKey {
			v = v.Get(s.key)
		} else {
			v = v.At(s.index)
		}
		if v == nil {
			return nil
		}
	}
	return v
}

func runGet(path, query string) error {
	steps, err := parsePath(query)
	if err != nil {
		return err
	}
	data, err := jsonfile.ReadFile(path)
	if err != nil {
		return err
	}

	a := arena.New()
	defer a.Release()

	root, err := parser.Parse(ast.NewBuilder(a), data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	v := resolvePath(root, steps)
	if v == nil {
		return fmt.Errorf("%s: no value at path %q", path, query)
	}
	out, err := writer.Serialize(a, v, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s\n", out)
	return nil
}
