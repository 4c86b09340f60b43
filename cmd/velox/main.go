package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"velox/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "velox",
	Short: "Velox source parser toolchain",
	Long:  `Velox parses source files into ESTree-shaped trees`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the target stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	return flag == "on" || (flag == "auto" && isTerminal(f))
}
