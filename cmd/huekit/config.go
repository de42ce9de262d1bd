package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gnana997/huekit/pkg/tokens"
	"github.com/gnana997/huekit/pkg/workspace"
)

const (
	defaultConfigPath = ".huekit/config.yaml"
	defaultHistoryDB  = ".huekit/history.db"
	configVersion     = "1"
)

// ProjectConfig holds the contents of .huekit/config.yaml.
type ProjectConfig struct {
	Version    string        `yaml:"version"`
	Sources    SourcesConfig `yaml:"sources,omitempty"`
	OutputDir  string        `yaml:"output_dir,omitempty"`
	Formats    []string      `yaml:"formats,omitempty"`
	HistoryDB  string        `yaml:"history_db,omitempty"`
	LogLevel   string        `yaml:"log_level,omitempty"`
	LogFormat  string        `yaml:"log_format,omitempty"`
	MCPLogPath string        `yaml:"mcp_log_path,omitempty"`
}

// SourcesConfig selects token source files for build and watch.
type SourcesConfig struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// loadProjectConfig reads the config file at path.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// writeProjectConfig writes cfg to path, creating parent directories.
func writeProjectConfig(path string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// defaultProjectConfig is what `huekit init` writes.
func defaultProjectConfig() *ProjectConfig {
	def := workspace.DefaultConfig()
	formats := make([]string, len(tokens.AllFormats))
	for i, f := range tokens.AllFormats {
		formats[i] = string(f)
	}
	return &ProjectConfig{
		Version: configVersion,
		Sources: SourcesConfig{
			Include: def.Include,
			Exclude: def.Exclude,
		},
		OutputDir: def.OutputDir,
		Formats:   formats,
		HistoryDB: defaultHistoryDB,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// resolve applies the fallback chain:
//  1. Explicit flag value (non-empty override)
//  2. Value from the project config
//  3. Default
func resolve(flagValue, configValue, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return def
}

// workspaceConfig converts the project config into a workspace.Config.
// A nil cfg yields the defaults. Unknown format names are an error.
func (cfg *ProjectConfig) workspaceConfig() (workspace.Config, error) {
	out := workspace.DefaultConfig()
	if cfg == nil {
		return out, nil
	}
	if len(cfg.Sources.Include) > 0 {
		out.Include = cfg.Sources.Include
	}
	if len(cfg.Sources.Exclude) > 0 {
		out.Exclude = cfg.Sources.Exclude
	}
	if cfg.OutputDir != "" {
		out.OutputDir = cfg.OutputDir
	}
	for _, name := range cfg.Formats {
		f, err := tokens.ParseFormat(name)
		if err != nil {
			return out, fmt.Errorf("invalid formats entry: %w", err)
		}
		out.Formats = append(out.Formats, f)
	}
	return out, nil
}

func (cfg *ProjectConfig) historyDB() string {
	if cfg == nil {
		return ""
	}
	return cfg.HistoryDB
}

func (cfg *ProjectConfig) logLevel() string {
	if cfg == nil {
		return ""
	}
	return cfg.LogLevel
}

func (cfg *ProjectConfig) logFormat() string {
	if cfg == nil {
		return ""
	}
	return cfg.LogFormat
}

func (cfg *ProjectConfig) mcpLogPath() string {
	if cfg == nil {
		return ""
	}
	return cfg.MCPLogPath
}
