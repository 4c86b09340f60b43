package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"velox/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "include commit hash and build date")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show velox build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}

		switch strings.ToLower(versionFormat) {
		case "pretty":
			renderVersionPretty(cmd.OutOrStdout(), v)
			return nil
		case "json":
			payload := versionPayload{Tool: "velox", Version: v}
			if versionShowFull {
				payload.GitCommit = valueOrUnknown(version.GitCommit)
				payload.BuildDate = valueOrUnknown(version.BuildDate)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func renderVersionPretty(out io.Writer, v string) {
	fmt.Fprintf(out, "velox %s\n", v)
	if versionShowFull {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
	}
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
