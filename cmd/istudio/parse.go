package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"istudio/internal/format"
	"istudio/internal/lexer"
	"istudio/internal/parser"
	"istudio/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and dump its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "text", "dump format (text|json)")
	parseCmd.Flags().Bool("ids", false, "include node ids in the dump")
}

func runParse(cmd *cobra.Command, args []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	includeIDs, err := cmd.Flags().GetBool("ids")
	if err != nil {
		return err
	}

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
			return fmt.Errorf("parse error at %s: %s", pe.Span, pe.Message)
		}
		return err
	}

	options := format.DumpOptions{IncludeIDs: includeIDs}
	switch outputFormat {
	case "text":
		fmt.Fprint(cmd.OutOrStdout(), format.DumpText(result.Arena, result.Root, options))
	case "json":
		fmt.Fprint(cmd.OutOrStdout(), format.DumpJSON(result.Arena, result.Root, options))
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
	return nil
}
