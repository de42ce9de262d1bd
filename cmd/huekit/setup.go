package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/spf13/cobra"
)

const serverName = "huekit"

type registerMethod string

const (
	methodCLI  registerMethod = "cli"
	methodFile registerMethod = "file"
)

// agentTarget describes how to register the huekit MCP server with one
// AI agent.
type agentTarget struct {
	ID         string
	Name       string
	Method     registerMethod
	Binary     string            // methodCLI: binary on PATH
	Markers    []string          // methodFile: directories that indicate presence
	ConfigPath func() string     // methodFile: config file location
	ServersKey string            // "servers" (VS Code) or "mcpServers"
	NeedsScope bool              // prompt for project/user scope
	Extra      map[string]string // extra fields in the server entry
}

// detectedAgent is an agent found on this machine.
type detectedAgent struct {
	Target     agentTarget
	Configured bool
	ConfigPath string
}

// setupEnv holds the system lookups setup depends on. Tests replace them.
type setupEnv struct {
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
	run      func(name string, args ...string) error
}

func defaultSetupEnv() setupEnv {
	return setupEnv{
		lookPath: exec.LookPath,
		stat:     os.Stat,
		run: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			return cmd.Run()
		},
	}
}

// setupOptions holds parsed flags for the setup command.
type setupOptions struct {
	auto     bool
	logCalls string
}

// agentTargets lists the supported agents in display order.
var agentTargets = []agentTarget{
	{
		ID: "claude_code", Name: "Claude Code",
		Method: methodCLI, Binary: "claude", NeedsScope: true,
	},
	{
		ID: "openai_codex", Name: "OpenAI Codex",
		Method: methodCLI, Binary: "codex", NeedsScope: true,
	},
	{
		ID: "vscode_copilot", Name: "VS Code Copilot",
		Method: methodFile, Markers: []string{".vscode"},
		ConfigPath: func() string { return filepath.Join(".vscode", "mcp.json") },
		ServersKey: "servers",
		Extra:      map[string]string{"type": "stdio"},
	},
	{
		ID: "cursor", Name: "Cursor",
		Method: methodFile, Markers: []string{".cursor"},
		ConfigPath: func() string { return filepath.Join(".cursor", "mcp.json") },
		ServersKey: "mcpServers",
	},
	{
		ID: "claude_desktop", Name: "Claude Desktop",
		Method:     methodFile,
		ConfigPath: claudeDesktopConfigPath,
		ServersKey: "mcpServers",
	},
}

func claudeDesktopConfigPath() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Claude", "claude_desktop_config.json")
	default:
		return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json")
	}
}

// detectAgents returns the agents present on this machine.
func (env setupEnv) detectAgents(targets []agentTarget) []detectedAgent {
	var found []detectedAgent
	for _, t := range targets {
		switch t.Method {
		case methodCLI:
			if _, err := env.lookPath(t.Binary); err == nil {
				found = append(found, detectedAgent{
					Target:     t,
					Configured: hasServerEntry(".mcp.json", "mcpServers"),
				})
			}

		case methodFile:
			if path, ok := env.locateConfig(t); ok {
				found = append(found, detectedAgent{
					Target:     t,
					ConfigPath: path,
					Configured: hasServerEntry(path, t.ServersKey),
				})
			}
		}
	}
	return found
}

// locateConfig reports whether a file-based agent is present and where its
// config lives. Agents without markers count as present when the config's
// parent directory exists.
func (env setupEnv) locateConfig(t agentTarget) (string, bool) {
	if t.ConfigPath == nil {
		return "", false
	}
	for _, marker := range t.Markers {
		if _, err := env.stat(marker); err == nil {
			return t.ConfigPath(), true
		}
	}
	if len(t.Markers) == 0 {
		path := t.ConfigPath()
		if _, err := env.stat(filepath.Dir(path)); err == nil {
			return path, true
		}
	}
	return "", false
}

// hasServerEntry checks whether the JSON file at path already registers
// huekit under serversKey.
func hasServerEntry(path, serversKey string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	_, dataType, _, err := jsonparser.Get(data, serversKey, serverName)
	return err == nil && dataType == jsonparser.Object
}

// serverArgs returns the arguments agents should start huekit with.
func serverArgs(opts setupOptions) []string {
	args := []string{"serve"}
	if opts.logCalls != "" {
		args = append(args, "--log-calls", opts.logCalls)
	}
	return args
}

// serverEntry returns the MCP server config object for huekit.
func serverEntry(opts setupOptions, extra map[string]string) map[string]any {
	args := serverArgs(opts)
	anyArgs := make([]any, len(args))
	for i, a := range args {
		anyArgs[i] = a
	}
	entry := map[string]any{
		"command": serverName,
		"args":    anyArgs,
	}
	for k, v := range extra {
		entry[k] = v
	}
	return entry
}

// mergeServerEntry adds a huekit entry under serversKey to existing JSON
// (or a new document) and returns the merged bytes.
// Returns nil, nil if huekit is already registered.
func mergeServerEntry(existing []byte, serversKey string, entry map[string]any) ([]byte, error) {
	config := make(map[string]any)
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &config); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	servers, ok := config[serversKey].(map[string]any)
	if !ok {
		servers = make(map[string]any)
	}
	if _, exists := servers[serverName]; exists {
		return nil, nil
	}

	servers[serverName] = entry
	config[serversKey] = servers

	out, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// registerCLI runs `<binary> mcp add` with the chosen scope.
func (env setupEnv) registerCLI(t agentTarget, scope string, opts setupOptions) error {
	args := []string{"mcp", "add"}
	if scope != "" {
		args = append(args, "--scope", scope)
	}
	args = append(args, serverName, "--", serverName)
	args = append(args, serverArgs(opts)...)
	return env.run(t.Binary, args...)
}

// registerFile merges the server entry into the agent's JSON config.
func registerFile(t agentTarget, path string, opts setupOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	var existing []byte
	if data, err := os.ReadFile(path); err == nil {
		existing = data
	}

	merged, err := mergeServerEntry(existing, t.ServersKey, serverEntry(opts, t.Extra))
	if err != nil {
		return err
	}
	if merged == nil {
		return nil
	}
	return os.WriteFile(path, merged, 0644)
}

// --- Interactive prompts ---

// promptYesNo prints a question and reads Y/n. Returns true for yes (default).
func promptYesNo(in *bufio.Scanner, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s ", question)
	if !in.Scan() {
		return true
	}
	answer := strings.TrimSpace(strings.ToLower(in.Text()))
	return answer == "" || answer == "y" || answer == "yes"
}

// promptScope reads 1/2/3 and returns "project", "user" or "" (skip).
func promptScope(in *bufio.Scanner, w io.Writer, agentName string) string {
	fmt.Fprintf(w, "\n%s: add the huekit MCP server?\n", agentName)
	fmt.Fprintln(w, "  [1] Project scope (shared with team)")
	fmt.Fprintln(w, "  [2] User scope (personal, global)")
	fmt.Fprintln(w, "  [3] Skip")
	fmt.Fprintf(w, "  > ")

	if !in.Scan() {
		return "project"
	}
	switch strings.TrimSpace(in.Text()) {
	case "1", "":
		return "project"
	case "2":
		return "user"
	default:
		return ""
	}
}

// --- Orchestration ---

func newSetupCmd(_ *app) *cobra.Command {
	var opts setupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Register the huekit MCP server with installed AI agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaultSetupEnv().execute(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.auto, "auto", false, "Configure every detected agent without prompting")
	cmd.Flags().StringVar(&opts.logCalls, "log-calls", "", "Have agents start the server with this call log")
	return cmd
}

// execute detects agents and registers huekit with each, prompting unless
// opts.auto is set.
func (env setupEnv) execute(r io.Reader, w io.Writer, opts setupOptions) {
	agents := env.detectAgents(agentTargets)
	if len(agents) == 0 {
		fmt.Fprintln(w, "No supported AI agents detected.")
		return
	}

	fmt.Fprintln(w, "Detected AI agents:")
	for _, d := range agents {
		if d.Configured {
			fmt.Fprintf(w, "  * %s (already configured)\n", d.Target.Name)
		} else {
			fmt.Fprintf(w, "  * %s\n", d.Target.Name)
		}
	}
	fmt.Fprintln(w)

	in := bufio.NewScanner(r)
	if !opts.auto && !promptYesNo(in, w, "Configure agents? [Y/n]") {
		return
	}

	for _, d := range agents {
		if d.Configured {
			fmt.Fprintf(w, "\n%s: already configured, skipping\n", d.Target.Name)
			continue
		}
		env.configureOne(in, w, d, opts)
	}
}

func (env setupEnv) configureOne(in *bufio.Scanner, w io.Writer, d detectedAgent, opts setupOptions) {
	switch d.Target.Method {
	case methodCLI:
		scope := "project"
		if !opts.auto && d.Target.NeedsScope {
			scope = promptScope(in, w, d.Target.Name)
			if scope == "" {
				fmt.Fprintln(w, "  skipped")
				return
			}
		}
		if err := env.registerCLI(d.Target, scope, opts); err != nil {
			fmt.Fprintf(w, "  ! %s: failed: %v\n", d.Target.Name, err)
			return
		}
		fmt.Fprintf(w, "  + %s configured (scope: %s)\n", d.Target.Name, scope)

	case methodFile:
		if !opts.auto && !promptYesNo(in, w, fmt.Sprintf("\n%s: add to %s? [Y/n]", d.Target.Name, d.ConfigPath)) {
			fmt.Fprintln(w, "  skipped")
			return
		}
		if err := registerFile(d.Target, d.ConfigPath, opts); err != nil {
			fmt.Fprintf(w, "  ! %s: failed: %v\n", d.Target.Name, err)
			return
		}
		fmt.Fprintf(w, "  + %s configured (%s)\n", d.Target.Name, d.ConfigPath)
	}
}
