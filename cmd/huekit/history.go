package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently converted colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := a.converterService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			w := cmd.OutOrStdout()
			if clearAll {
				if err := svc.ClearHistory(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(w, "history cleared")
				return nil
			}

			entries := svc.History()
			if a.jsonOut {
				return printJSON(w, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(w, mutedStyle.Render("no colors yet"))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(w, "%s  %s  %s\n", a.render.swatch(e.Hex),
					mutedStyle.Render(fmt.Sprintf("oklch(%.3f %.3f %.1f)", e.L, e.C, e.H)),
					e.Timestamp.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Remove every entry")
	return cmd
}
