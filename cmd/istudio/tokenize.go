package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"istudio/internal/lexer"
	"istudio/internal/source"
	"istudio/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Tokenize an IStudio source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
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

	switch format {
	case "pretty":
		return printTokensPretty(cmd.OutOrStdout(), stream)
	case "json":
		return printTokensJSON(cmd.OutOrStdout(), stream)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printTokensPretty(out io.Writer, stream token.Stream) error {
	for i := 0; i < stream.Len(); i++ {
		tk := stream.At(i)
		_, err := fmt.Fprintf(out, "%-14s %-12v %q\n", tk.Kind, tk.Span, tk.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

type jsonToken struct {
	Kind  string `json:"kind"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Text  string `json:"text"`
}

func printTokensJSON(out io.Writer, stream token.Stream) error {
	tokens := make([]jsonToken, 0, stream.Len())
	for i := 0; i < stream.Len(); i++ {
		tk := stream.At(i)
		tokens = append(tokens, jsonToken{
			Kind:  tk.Kind.String(),
			Start: tk.Span.Start,
			End:   tk.Span.End,
			Text:  tk.Text,
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(tokens)
}
