package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/jsonkit/arena"
	"github.com/joshuapare/jsonkit/ast"
	"github.com/joshuapare/jsonkit/internal/jsonfile"
	"github.com/joshuapare/jsonkit/parser"
	"github.com/joshuapare/jsonkit/writer"
)

var (
	fmtPretty bool
	fmtOutput string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a JSON document",
	Long: `Fmt parses a JSON document and writes it back out, compact by default
or indented with --pretty. The result goes to stdout unless --output
names a file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFmt(args[0])
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtPretty, "pretty", "p", false, "Indent the output")
	fmtCmd.Flags().StringVarP(&fmtOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(path string) error {
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
	out, err := writer.Serialize(a, root, fmtPretty)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}

	if fmtOutput != "" {
		return jsonfile.WriteFile(fmtOutput, append(out, '\n'))
	}
	fmt.Fprintf(os.Stdout, "%s\n", out)
	return nil
}
