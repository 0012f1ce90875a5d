package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "jsonctl",
	Short: "Validate, format and query JSON documents",
	Long: `jsonctl is a tool for working with JSON documents using the jsonkit
arena codec. It validates fixture suites, reformats documents, extracts
values by path and reports parse/memory statistics.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")

	cobra.OnInitialize(initLogging)
}

// initLogging wires slog to the verbosity flags; by default the tool is
// silent apart from command output.
func initLogging() {
	level := slog.LevelWarn
	switch {
	case quiet:
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	case verbose:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message unless in quiet mode.
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
