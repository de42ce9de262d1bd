// Package workspace builds token exports for a project directory: it finds
// token source files, merges them, writes every configured export format and
// can rebuild on file changes.
package workspace

import (
	"path/filepath"
	"strings"

	"github.com/gnana997/huekit/pkg/tokens"
)

// Config controls discovery and output for a workspace.
type Config struct {
	// Include globs select token sources, relative to the root.
	Include []string

	// Exclude globs skip files and directories, relative to the root.
	Exclude []string

	// OutputDir receives the generated files. Relative paths resolve
	// against the root. The output dir is never scanned for sources.
	OutputDir string

	// Formats to generate. Empty means every format.
	Formats []tokens.Format

	// DebounceMs groups rapid file changes before a rebuild (watch only).
	DebounceMs int
}

// DefaultInclude matches the conventional token file names.
var DefaultInclude = []string{
	"**/tokens.json",
	"**/*.tokens.json",
	"**/design-tokens.json",
	"**/tokens.css",
	"**/*.tokens.css",
	"**/_tokens.scss",
	"**/*.tokens.scss",
}

// DefaultExclude skips dependency and VCS directories.
var DefaultExclude = []string{
	"node_modules/**",
	".git/**",
	"dist/**",
}

// DefaultConfig returns the conventional workspace layout.
func DefaultConfig() Config {
	return Config{
		Include:    DefaultInclude,
		Exclude:    DefaultExclude,
		OutputDir:  "build/tokens",
		DebounceMs: 200,
	}
}

func (c Config) formats() []tokens.Format {
	if len(c.Formats) == 0 {
		return tokens.AllFormats
	}
	return c.Formats
}

func (c Config) outputPath(root string) string {
	if filepath.IsAbs(c.OutputDir) {
		return c.OutputDir
	}
	return filepath.Join(root, c.OutputDir)
}

// withOutputExcluded returns c with the output directory added to Exclude
// when it lives under root.
func (c Config) withOutputExcluded(root string) Config {
	rel, err := filepath.Rel(root, c.outputPath(root))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return c
	}
	excl := make([]string, 0, len(c.Exclude)+1)
	excl = append(excl, c.Exclude...)
	excl = append(excl, filepath.ToSlash(rel)+"/**")
	c.Exclude = excl
	return c
}
