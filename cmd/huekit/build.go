package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gnana997/huekit/pkg/workspace"
)

// newBuilder creates a workspace builder for root using the project config.
func (a *app) newBuilder(root string) (*workspace.Builder, workspace.Config, error) {
	cfg, err := a.cfg.workspaceConfig()
	if err != nil {
		return nil, cfg, err
	}
	b, err := workspace.NewBuilder(root, cfg, a.logger)
	if err != nil {
		return nil, cfg, err
	}
	return b, cfg, nil
}

func printBuild(w io.Writer, r *workspace.BuildResult) {
	fmt.Fprintf(w, "%d tokens from %d sources in %dms\n", r.Tokens, len(r.Sources), r.DurationMs)
	for _, f := range r.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  %s %s: %s\n", failStyle.Render("skipped"), e.Path, e.Err)
	}
}

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build [root]",
		Short: "Build token exports for a project",
		Long: `Find token source files under root (default: current directory), merge
them in path order and write every configured format into the output
directory (default build/tokens).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			b, _, err := a.newBuilder(root)
			if err != nil {
				return err
			}
			result, err := b.Build(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), result)
			}
			printBuild(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Rebuild token exports when sources change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			b, cfg, err := a.newBuilder(root)
			if err != nil {
				return err
			}
			if debounceMs > 0 {
				cfg.DebounceMs = debounceMs
			}

			w := cmd.OutOrStdout()
			result, err := b.Build(cmd.Context())
			if err != nil {
				return err
			}
			printBuild(w, result)

			watcher, err := workspace.NewWatcher(b, cfg, a.logger, func(r *workspace.BuildResult, err error) {
				if err != nil {
					fmt.Fprintf(w, "%s %v\n", failStyle.Render("build failed:"), err)
					return
				}
				printBuild(w, r)
			})
			if err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Fprintf(w, "watching %s (ctrl-c to stop)\n", b.Root())

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sig)

			select {
			case <-sig:
			case <-cmd.Context().Done():
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&debounceMs, "debounce", 0, "Debounce interval in milliseconds (default 200)")
	return cmd
}
