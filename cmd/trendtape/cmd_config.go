package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zappabad/trendtape/internal/config"
)

func newConfigCmd(a *cli) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to the config path",
		Args:  cobra.NoArgs,
		// Skips the root's config load so --force can replace a file that
		// no longer loads.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.cfgPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.cfgPath)
			}
			if err := os.MkdirAll(filepath.Dir(a.cfgPath), 0o755); err != nil {
				return fmt.Errorf("create config dir: %w", err)
			}
			cfg := config.DefaultConfig()
			if err := cfg.Save(a.cfgPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", a.cfgPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective config",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(a.cfg); err != nil {
					return fmt.Errorf("encode config: %w", err)
				}
				return enc.Close()
			},
		},
		initCmd,
	)
	return configCmd
}
