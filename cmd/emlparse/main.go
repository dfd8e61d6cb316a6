// Command emlparse reads an EML file and either reports the first
// parse error it finds or prints the parsed session: a summary by
// default, the session text with --print, or both with --print --summary.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathanbarta/go-eml/pkgs/ast"
	"github.com/nathanbarta/go-eml/pkgs/parser"
)

// Exit code constants
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitParseError       = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		summary bool
		print   bool
	)

	exit := ExitSuccess
	root := &cobra.Command{
		Use:           "emlparse <file>",
		Short:         "Parse an EML exercise session",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			content, err := os.ReadFile(posArgs[0])
			if err != nil {
				exit = ExitIOError
				return fmt.Errorf("reading file: %w", err)
			}

			result, err := parser.Parse(string(content))
			if err != nil {
				exit = ExitParseError
				return err
			}

			if print {
				printResult(cmd.OutOrStdout(), result)
			}
			if summary || !print {
				printSummary(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}
	root.Flags().BoolVar(&summary, "summary", false, "print exercise-kind counts")
	root.Flags().BoolVar(&print, "print", false, "print the parsed session back out")
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "emlparse: %v\n", err)
		if exit == ExitSuccess {
			exit = ExitInvalidArguments
		}
		return exit
	}
	return ExitSuccess
}

func printResult(w io.Writer, result *ast.Result) {
	if result.Version != "" {
		fmt.Fprintf(w, "version: %s\n", result.Version)
	}
	if result.Weight != "" {
		fmt.Fprintf(w, "weight: %s\n", result.Weight)
	}
	fmt.Fprintln(w, result.String())
}

func printSummary(w io.Writer, result *ast.Result) {
	counts := ast.CountKind(result.Objects)
	fmt.Fprintf(w, "%d header entries, %d exercises\n", len(result.Headers), len(result.Objects))
	for _, kind := range []string{"single", "super", "circuit"} {
		n, ok := counts[kind]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s: %d\n", kind, n)
		if kind != "single" {
			continue
		}
		for _, obj := range ast.FilterKind(result.Objects, kind) {
			fmt.Fprintf(w, "    %s\n", obj.Single.Name)
		}
	}
}
