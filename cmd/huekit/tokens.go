package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gnana997/huekit/pkg/tokens"
)

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Parse and export design tokens",
		Long: `Parse design tokens from JSON, CSS custom properties or SCSS variables
and export them to other formats. Pass '-' to read from stdin.`,
	}
	cmd.AddCommand(
		newTokensParseCmd(a),
		newTokensExportCmd(a),
	)
	return cmd
}

// readTokens loads and parses a token source file, or stdin for "-".
func readTokens(cmd *cobra.Command, path string) (*tokens.TokenSet, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return tokens.Parse(string(data))
}

func newTokensParseCmd(a *app) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "List the tokens in a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := readTokens(cmd, args[0])
			if err != nil {
				return err
			}
			if typeName != "" {
				t, ok := tokens.ParseType(typeName)
				if !ok {
					return fmt.Errorf("unknown token type %q", typeName)
				}
				set = set.Filter(t)
			}
			a.logger.Debug("tokens parsed", "file", args[0], "tokens", set.Len())

			w := cmd.OutOrStdout()
			if a.jsonOut {
				return printJSON(w, set.All())
			}
			width := 0
			for _, name := range set.Names() {
				if len(name) > width {
					width = len(name)
				}
			}
			for _, t := range set.All() {
				fmt.Fprintf(w, "%-*s  %-10s  %s\n", width, t.Name, t.Type, t.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "Only list tokens of this type")
	return cmd
}

func newTokensExportCmd(a *app) *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export <file|->",
		Short: "Export tokens to one or all formats",
		Long: `Export tokens to a single format (printed to stdout, or written to
--out) or, with --format all, write every format into --out.

Examples:
  huekit tokens export tokens.json --format css
  huekit tokens export tokens.json --format all --out build/tokens`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := readTokens(cmd, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if format == "all" {
				if outDir == "" {
					return fmt.Errorf("--out is required with --format all")
				}
				files, err := tokens.GenerateAll(set)
				if err != nil {
					return err
				}
				return writeFiles(w, outDir, files)
			}

			f, err := tokens.ParseFormat(format)
			if err != nil {
				return err
			}
			out, err := tokens.Generate(f, set)
			if err != nil {
				return err
			}
			if outDir == "" {
				_, err = fmt.Fprint(w, out)
				return err
			}
			return writeFiles(w, outDir, map[string]string{f.FileName(): out})
		},
	}
	cmd.Flags().StringVar(&format, "format", "css", "Output format, or 'all'")
	cmd.Flags().StringVar(&outDir, "out", "", "Write files into this directory")
	return cmd
}

func writeFiles(w io.Writer, dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintln(w, path)
	}
	return nil
}
