package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnana997/huekit/presets"
)

const defaultSamplePath = "tokens/base.tokens.json"

func newInitCmd(a *app) *cobra.Command {
	var (
		force  bool
		sample string
		preset string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default project config",
		Example: `  huekit init
  huekit init --sample
  huekit init --sample=design/brand.tokens.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg != nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			}

			var data []byte
			if sample != "" {
				if _, err := os.Stat(sample); err == nil {
					return fmt.Errorf("%s already exists", sample)
				}
				raw, err := presets.Raw(preset)
				if err != nil {
					return err
				}
				data = raw
			}

			if err := writeProjectConfig(a.configPath, defaultProjectConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", a.configPath)

			if sample == "" {
				return nil
			}
			if err := os.MkdirAll(filepath.Dir(sample), 0755); err != nil {
				return fmt.Errorf("failed to create sample directory: %w", err)
			}
			if err := os.WriteFile(sample, data, 0644); err != nil {
				return fmt.Errorf("failed to write sample tokens: %w", err)
			}

			set, err := presets.Load(preset)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d tokens)\n", sample, set.Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	cmd.Flags().StringVar(&sample, "sample", "", "Also write a starter token file (default path "+defaultSamplePath+")")
	cmd.Flags().Lookup("sample").NoOptDefVal = defaultSamplePath
	cmd.Flags().StringVar(&preset, "preset", presets.Base,
		"Preset for --sample ("+strings.Join(presets.Names(), ", ")+")")
	return cmd
}
