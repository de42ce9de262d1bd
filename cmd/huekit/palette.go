package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/huekit/pkg/palette"
	"github.com/gnana997/huekit/pkg/tokens"
)

func newHarmonyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "harmony <base> <kind>",
		Short: "Generate a color harmony",
		Long: `Generate a harmony around a base color in OKLCH space.

Kinds: monochromatic, complementary, triadic, tetradic, analogous,
split-complementary`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := palette.ParseKind(args[1])
			if err != nil {
				return err
			}
			colors := palette.NewEngine(a.conv).Harmony(args[0], kind)
			if len(colors) == 0 {
				return fmt.Errorf("invalid base color: %q", args[0])
			}
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), colors)
			}
			a.render.printHarmony(cmd.OutOrStdout(), kind, colors)
			return nil
		},
	}
}

func newRampCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ramp <base>",
		Short: "Generate a 50-900 lightness ramp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := palette.NewEngine(a.conv).Ramp(args[0])
			if len(steps) == 0 {
				return fmt.Errorf("invalid base color: %q", args[0])
			}
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), steps)
			}
			a.render.printRamp(cmd.OutOrStdout(), "", steps)
			return nil
		},
	}
}

func newPaletteCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "palette <base> <kind>",
		Short: "Expand a harmony into ramps, optionally as design tokens",
		Long: `Build the harmony of the given kind and expand every member into a
lightness ramp. With --format, print the palette as color.<role>.<step>
tokens in that format instead.

Example:
  huekit palette "#3366ff" triadic --format tailwind`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := palette.ParseKind(args[1])
			if err != nil {
				return err
			}
			ramps := palette.NewEngine(a.conv).Palette(args[0], kind)
			if len(ramps) == 0 {
				return fmt.Errorf("invalid base color: %q", args[0])
			}

			w := cmd.OutOrStdout()
			if format != "" {
				f, err := tokens.ParseFormat(format)
				if err != nil {
					return err
				}
				out, err := tokens.Generate(f, palette.ToTokens(ramps))
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(w, out)
				return err
			}
			if a.jsonOut {
				return printJSON(w, ramps)
			}
			for _, r := range ramps {
				a.render.printRamp(w, r.Name, r.Steps)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Print as tokens: css, scss, js, json, tailwind, ios, android")
	return cmd
}
