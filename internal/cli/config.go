package cli

import (
	"fmt"

	"github.com/mcao2/deckcheck/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage deckcheck configuration",
		Long: `Manage the deckcheck configuration file.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (` + config.APIURLEnv + `, also read from .env)
3. Config file (~/.config/deckcheck/config.yaml)
4. Defaults`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", cfg.Path())
			fmt.Fprint(out, string(data))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a documented config file",
		Long:  "Create a config file with every option documented. An existing file is left untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteExample(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", path)
			return nil
		},
	})

	return configCmd
}
