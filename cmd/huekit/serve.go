package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/gnana997/huekit/pkg/mcp"
	"github.com/gnana997/huekit/pkg/mcplog"
)

func newServeCmd(a *app) *cobra.Command {
	var logCalls string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := a.converterService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			callLog, err := mcplog.NewLogger(resolve(logCalls, a.cfg.mcpLogPath(), ""))
			if err != nil {
				return err
			}
			defer callLog.Close()

			a.logger.Info("starting MCP server", "version", version, "call_log", callLog.Path())
			srv := mcpserver.NewServer(a.conv, svc, callLog)
			err = srv.ServeStdio()

			stats := a.conv.Stats()
			a.logger.Debug("color cache stats", "hits", stats.Hits, "misses", stats.Misses, "size", stats.Size)

			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logCalls, "log-calls", "", "Append a JSONL record of every tool call to this file")
	return cmd
}

func newCallsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calls [log-file]",
		Short: "Summarize an MCP call log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.mcpLogPath()
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no call log given and mcp_log_path is not configured")
			}
			entries, err := mcplog.ReadEntries(path)
			if err != nil {
				return err
			}
			stats := mcplog.Summarize(entries)
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), stats)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-26s %6s %8s %8s %9s\n", "TOOL", "CALLS", "ERRORS", "AVG MS", "BYTES")
			for _, s := range stats {
				fmt.Fprintf(w, "%-26s %6d %8d %8.1f %9d\n",
					s.Tool, s.Calls, s.ToolErrors+s.Failures, s.AvgDurationMs, s.TotalBytes)
			}
			return nil
		},
	}
}
