package main

import (
	"os"

	"github.com/spf13/cobra"

	"istudio/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the IStudio language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) error {
	server := lsp.NewServer(lsp.DefaultOptions())
	os.Exit(server.Run(os.Stdin, os.Stdout))
	return nil
}
