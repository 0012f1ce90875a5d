package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/jsonkit/arena"
	"github.com/joshuapare/jsonkit/ast"
	"github.com/joshuapare/jsonkit/internal/jsonfile"
	"github.com/joshuapare/jsonkit/parser"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Run a JSON conformance fixture suite",
	Long: `Validate runs every .json file in a directory through the parser and
checks the result against the expectation encoded in the file name:

  y_*.json  must parse
  n_*.json  must be rejected
  i_*.json  implementation defined, result is informational only

Any other name is treated as must-parse. The arena is reset between
files so the whole suite runs in one allocation footprint.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type fixtureResult struct {
	name    string
	ok      bool
	verdict string
}

func runValidate(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .json fixtures in %s", dir)
	}
	sort.Strings(paths)

	a := arena.New()
	defer a.Release()
	b := ast.NewBuilder(a)

	var results []fixtureResult
	passed, failed, info := 0, 0, 0

	for _, path := range paths {
		name := filepath.Base(path)
		data, err := jsonfile.ReadFile(path)
		if err != nil {
			return err
		}

		_, perr := parser.Parse(b, data)
		a.Reset()

		r := judge(name, perr)
		results = append(results, r)
		switch {
		case strings.HasPrefix(name, "i_"):
			info++
		case r.ok:
			passed++
		default:
			failed++
			slog.Debug("fixture failed", "file", name, "err", perr)
		}
	}

	for _, r := range results {
		marker := "PASS"
		if !r.ok {
			marker = "FAIL"
		}
		printInfo("%-4s  %-50s %s\n", marker, r.name, r.verdict)
	}
	printInfo("\n%d passed, %d failed, %d informational (%d total)\n",
		passed, failed, info, len(results))

	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failed, len(results))
	}
	return nil
}

// judge maps a parse outcome to the expectation in the fixture name.
func judge(name string, perr error) fixtureResult {
	parsed := perr == nil
	switch {
	case strings.HasPrefix(name, "n_"):
		if parsed {
			return fixtureResult{name, false, "parsed but should have been rejected"}
		}
		return fixtureResult{name, true, "rejected"}
	case strings.HasPrefix(name, "i_"):
		if parsed {
			return fixtureResult{name, true, "parsed (implementation defined)"}
		}
		return fixtureResult{name, true, "rejected (implementation defined)"}
	default:
		if parsed {
			return fixtureResult{name, true, "parsed"}
		}
		return fixtureResult{name, false, fmt.Sprintf("rejected: %v", perr)}
	}
}
