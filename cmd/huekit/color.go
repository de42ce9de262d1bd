package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnana997/huekit/pkg/colormath"
	"github.com/gnana997/huekit/pkg/contrast"
	"github.com/gnana997/huekit/pkg/converter"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <hex> | convert <L> <C> <H>",
		Short: "Convert between hex and OKLCH",
		Long: `Convert a hex color to OKLCH and RGB, or an OKLCH triple to hex.
Every conversion is added to the color history.

Examples:
  huekit convert "#3366ff"
  huekit convert 0.628 0.258 29.2`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("expected a hex color or three OKLCH components, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := a.converterService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			var conv converter.Conversion
			if len(args) == 1 {
				conv, err = svc.FromHex(cmd.Context(), args[0])
			} else {
				var lch [3]float64
				for i, s := range args {
					lch[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("invalid OKLCH component %q: %w", s, err)
					}
				}
				conv, err = svc.FromOKLCH(cmd.Context(), lch[0], lch[1], lch[2])
			}
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), conv)
			}
			a.render.printConversion(cmd.OutOrStdout(), conv)
			return nil
		},
	}
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, ok := contrast.NewEngine(a.conv).Check(args[0], args[1])
			if !ok {
				return fmt.Errorf("invalid color pair: %q on %q", args[0], args[1])
			}
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), report)
			}
			a.render.printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func newSimulateCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "simulate <color>",
		Short: "Simulate color vision deficiencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.conv.ToRGB(args[0]); err != nil {
				return fmt.Errorf("invalid color: %w", err)
			}
			engine := contrast.NewEngine(a.conv)

			kinds := contrast.Deficiencies
			if kind != "" {
				d, err := parseDeficiency(kind)
				if err != nil {
					return err
				}
				kinds = []contrast.Deficiency{d}
			}

			results := make(map[contrast.Deficiency]string, len(kinds))
			for _, d := range kinds {
				results[d] = engine.Simulate(args[0], d)
			}
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), results)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-13s %s\n", "original", a.render.swatch(normalizedOr(args[0])))
			for _, d := range kinds {
				fmt.Fprintf(w, "%-13s %s\n", d, a.render.swatch(results[d]))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "", "Only simulate one of: protanopia, deuteranopia, tritanopia")
	return cmd
}

func parseDeficiency(name string) (contrast.Deficiency, error) {
	if d, ok := contrast.ParseDeficiency(name); ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown deficiency %q (want protanopia, deuteranopia or tritanopia)", name)
}

func normalizedOr(hex string) string {
	if n, err := colormath.NormalizeHex(hex); err == nil {
		return n
	}
	return hex
}

func newSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <background>",
		Short: "Suggest black or white text for a background",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := contrast.NewEngine(a.conv)
			text := engine.SuggestText(args[0])
			report, ok := engine.Check(text, args[0])
			if !ok {
				return fmt.Errorf("invalid color: %q", args[0])
			}
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), report)
			}
			a.render.printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}
