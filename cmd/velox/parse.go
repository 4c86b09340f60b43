package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"velox"
	"velox/internal/source"
	"velox/internal/workers"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js|dir...",
	Short: "Parse source files into ESTree JSON",
	Long:  `Parse reads JavaScript sources and prints their trees, one JSON object per file`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "json", "output format (json|binary|none)")
	parseCmd.Flags().String("source-type", "", "goal symbol (script|module|unambiguous)")
	parseCmd.Flags().Bool("preserve-parens", true, "emit ParenthesizedExpression nodes")
	parseCmd.Flags().Int("jobs", 0, "parallel parses (0 = number of CPUs)")
}

// parseOutput is one file's JSON line. Program embeds the already
// serialized tree without re-encoding it.
type parseOutput struct {
	Path     string          `json:"path"`
	Program  json.RawMessage `json:"program"`
	Comments []velox.Comment `json:"comments"`
	Errors   []string        `json:"errors"`

	binary []byte
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "json", "binary", "none":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	cfg, err := resolveParseConfig(cmd)
	if err != nil {
		return err
	}

	files, err := collectSourceFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no source files found")
	}
	if format == "binary" && len(files) != 1 {
		return fmt.Errorf("binary format requires exactly one file, got %d", len(files))
	}

	pool := workers.NewPool(cfg.Jobs)
	pending := make([]*workers.Pending[parseOutput], len(files))
	for i, path := range files {
		path := path
		pending[i] = workers.Go(pool, func() parseOutput {
			return parseOne(path, cfg, format)
		})
	}

	failed := 0
	enc := json.NewEncoder(os.Stdout)
	for _, p := range pending {
		out, err := p.Wait()
		if err != nil {
			return err
		}
		for _, msg := range out.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		if len(out.Errors) > 0 {
			failed++
		}

		switch format {
		case "json":
			if err := enc.Encode(out); err != nil {
				return err
			}
		case "binary":
			if _, err := os.Stdout.Write(out.binary); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		sum := fmt.Sprintf("%d of %d files had syntax errors", failed, len(files))
		if useColor(cmd, os.Stderr) {
			sum = color.New(color.FgRed, color.Bold).Sprint(sum)
		}
		fmt.Fprintln(os.Stderr, sum)
		return fmt.Errorf("parse failed")
	}
	return nil
}

func parseOne(path string, cfg parseConfig, format string) parseOutput {
	f, err := source.Load(path)
	if err != nil {
		return parseOutput{Path: path, Program: json.RawMessage("null"), Errors: []string{err.Error()}}
	}
	text := string(f.Content)
	res := velox.ParseSync(text, cfg.options(path))
	out := parseOutput{
		Path:     path,
		Program:  json.RawMessage(res.Program),
		Comments: res.Comments,
		Errors:   res.Errors,
	}
	if format == "binary" {
		out.binary = velox.ParseSyncBuffer(text, cfg.options(path))
	}
	return out
}

var sourceExts = map[string]bool{
	".js": true, ".mjs": true, ".cjs": true,
	".jsx": true, ".mts": true, ".cts": true, ".ts": true,
}

// collectSourceFiles expands directory arguments into their source files
// in walk order; plain file arguments pass through untouched.
func collectSourceFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && sourceExts[filepath.Ext(path)] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

type parseConfig struct {
	SourceType     string
	PreserveParens bool
	Jobs           int
}

func (c parseConfig) options(path string) *velox.Options {
	pp := c.PreserveParens
	return &velox.Options{
		SourceType:     c.SourceType,
		SourceFilename: path,
		PreserveParens: &pp,
	}
}

// resolveParseConfig layers flags over the manifest over defaults.
// Explicit flags always win; the manifest fills in what the command line
// left unsaid.
func resolveParseConfig(cmd *cobra.Command) (parseConfig, error) {
	cfg := parseConfig{PreserveParens: true}

	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return cfg, err
	}
	if ok {
		if manifest.Config.Parse.SourceType != "" {
			cfg.SourceType = manifest.Config.Parse.SourceType
		}
		if manifest.Config.Parse.PreserveParens != nil {
			cfg.PreserveParens = *manifest.Config.Parse.PreserveParens
		}
		cfg.Jobs = manifest.Config.Parse.Jobs
	}

	if cmd.Flags().Changed("source-type") {
		cfg.SourceType, _ = cmd.Flags().GetString("source-type")
	}
	if cmd.Flags().Changed("preserve-parens") {
		cfg.PreserveParens, _ = cmd.Flags().GetBool("preserve-parens")
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs, _ = cmd.Flags().GetInt("jobs")
	}

	switch cfg.SourceType {
	case "", "script", "module", "unambiguous":
	default:
		return cfg, fmt.Errorf("unknown source type: %s", cfg.SourceType)
	}
	return cfg, nil
}
