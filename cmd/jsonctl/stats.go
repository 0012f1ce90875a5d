package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/jsonkit/arena"
	"github.com/joshuapare/jsonkit/ast"
	"github.com/joshuapare/jsonkit/internal/jsonfile"
	"github.com/joshuapare/jsonkit/parser"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show document and arena statistics",
	Long: `Stats parses a JSON document and reports what the tree contains and
how much arena memory the parse consumed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(args[0])
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// treeStats tallies nodes per kind plus structural extremes.
type treeStats struct {
	counts   [6]int
	maxDepth int
	keyBytes int
	strBytes int
}

func (ts *treeStats) walk(v *ast.Value, depth int) {
	if v == nil {
		return
	}
	if depth > ts.maxDepth {
		ts.maxDepth = depth
	}
	k := v.Kind()
	ts.counts[k]++
	switch k {
	case ast.String:
		ts.strBytes += len(v.StringBytes())
	case ast.Array:
		for n := v.First(); n != nil; n = n.Next() {
			ts.walk(n.Value(), depth+1)
		}
	case ast.Object:
		for n := v.First(); n != nil; n = n.Next() {
			ts.keyBytes += len(n.KeyBytes())
			ts.walk(n.Value(), depth+1)
		}
	}
}

func runStats(path string) error {
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

	var ts treeStats
	ts.walk(root, 1)
	total := 0
	for _, c := range ts.counts {
		total += c
	}

	printInfo("document:  %s (%d bytes)\n", path, len(data))
	printInfo("values:    %d total, depth %d\n", total, ts.maxDepth)
	for k := ast.Null; k <= ast.Object; k++ {
		printInfo("  %-7s %d\n", k.String(), ts.counts[k])
	}
	printInfo("strings:   %d key bytes, %d string bytes\n", ts.keyBytes, ts.strBytes)
	printInfo("arena:     %s\n", a.Stats())
	return nil
}
