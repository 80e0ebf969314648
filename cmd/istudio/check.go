package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"istudio/internal/diag"
	"istudio/internal/lexer"
	"istudio/internal/parser"
	"istudio/internal/sema"
	"istudio/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run lex, parse, and semantic analysis and print diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	fileID, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	file := fs.Get(fileID)
	stream := lexer.Lex(file, lexer.DefaultConfig())

	result, err := parser.ParseModule(stream)
	if err != nil {
		if pe, ok := err.(*parser.Error); ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "error %s: %s\n", pe.Span, pe.Message)
			os.Exit(1)
		}
		return err
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	analyzer := sema.New(result.Arena, diag.BagReporter{Bag: bag})
	analyzer.Analyze(result.Root)
	bag.Sort()

	if bag.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no diagnostics")
		return nil
	}

	rendered := diag.FormatGoldenDiagnostics(bag.Items(), fs, false)
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}
