package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"velox"
	"velox/internal/ast"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [flags]",
	Short: "Show the node type schema",
	Long:  `Schema prints every node kind's serialized fields, for building decoders on the host side`,
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

func init() {
	schemaCmd.Flags().String("format", "json", "output format (json|table)")
}

func runSchema(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	switch format {
	case "json":
		fmt.Println(velox.Schema())
		return nil
	case "table":
		renderSchemaTable(useColor(cmd, os.Stdout))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderSchemaTable(colored bool) {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	if !colored {
		nameStyle = lipgloss.NewStyle()
		typeStyle = lipgloss.NewStyle()
	}

	for _, def := range ast.Schema() {
		fmt.Println(nameStyle.Render(def.Name))
		for _, f := range def.Fields {
			fmt.Printf("  %-14s %s\n", f.Name, typeStyle.Render(f.Type))
		}
	}
}
