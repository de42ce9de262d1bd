package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnana997/huekit/pkg/colormath"
	"github.com/gnana997/huekit/pkg/converter"
	"github.com/gnana997/huekit/pkg/history"
	"github.com/gnana997/huekit/pkg/util"
)

const version = "0.1.0-dev"

// app carries global flags and the dependencies built from them.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	historyDB  string
	jsonOut    bool

	cfg    *ProjectConfig
	logger *slog.Logger
	conv   *colormath.CachedConverter
	render *renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "huekit",
		Short: "Color conversion, palettes, contrast checks and design tokens",
		Long: `huekit converts colors between hex and OKLCH, builds harmonies and
lightness ramps, checks WCAG contrast, and turns design token files into CSS,
SCSS, JS, JSON, Tailwind, iOS and Android outputs.

Run 'huekit serve' to expose the same tools to AI agents over MCP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", defaultConfigPath, "Project config file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&a.historyDB, "history-db", "", "History database path (\":memory:\" for none)")
	pf.BoolVar(&a.jsonOut, "json", false, "Print JSON instead of text")

	root.AddCommand(
		newConvertCmd(a),
		newContrastCmd(a),
		newSimulateCmd(a),
		newSuggestCmd(a),
		newHarmonyCmd(a),
		newRampCmd(a),
		newPaletteCmd(a),
		newTokensCmd(a),
		newBuildCmd(a),
		newWatchCmd(a),
		newServeCmd(a),
		newCallsCmd(a),
		newHistoryCmd(a),
		newInitCmd(a),
		newSetupCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the CLI.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the project config and builds the logger and converter.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := loadProjectConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := util.ParseLogLevel(resolve(a.logLevel, cfg.logLevel(), ""))
	if err != nil {
		return err
	}
	format, err := util.ParseLogFormat(resolve(a.logFormat, cfg.logFormat(), ""))
	if err != nil {
		return err
	}
	a.logger = util.NewLogger(util.LoggerConfig{Level: level, Format: format, Output: logOut})
	util.SetDefault(a.logger)

	a.conv, err = colormath.NewCachedConverter(colormath.NewColorful(), colormath.DefaultCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create color cache: %w", err)
	}
	a.render = newRenderer(a.conv)

	a.logger.Debug("configuration loaded", "config", a.configPath, "found", cfg != nil)
	return nil
}

// openHistory opens the persistent history store. The returned close
// function is never nil.
func (a *app) openHistory() (history.Store, func(), error) {
	path := resolve(a.historyDB, a.cfg.historyDB(), defaultHistoryDB)
	store, err := history.OpenSQLite(path)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open history database: %w", err)
	}
	a.logger.Debug("history database opened", "path", path)
	return store, func() { _ = store.Close() }, nil
}

// converterService wires a converter.Service to the history store and
// loads the stored entries.
func (a *app) converterService(cmd *cobra.Command) (*converter.Service, func(), error) {
	store, closeFn, err := a.openHistory()
	if err != nil {
		return nil, closeFn, err
	}
	svc := converter.NewService(a.conv, nil, store, a.logger)
	if err := svc.LoadHistory(cmd.Context()); err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return svc, closeFn, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "huekit %s\n", version)
			return nil
		},
	}
}
