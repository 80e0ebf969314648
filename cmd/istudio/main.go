// Command istudio is the IStudio compiler and toolchain CLI: tokenize,
// parse, check, build, and language-server entry points over the core
// lex/parse/sema/lower/optimize/emit pipeline.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"istudio/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "istudio",
	Short: "IStudio language compiler and toolchain",
	Long:  "IStudio is a small C-family-targeting compiler with a language server.",
}

func main() {
	rootCmd.Version = version.Plain()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(lspCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 1000, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	return mode == "on" || (mode != "off" && isTerminal(f))
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	return n
}
