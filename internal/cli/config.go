package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/config"
	"github.com/faizmokh/jam/internal/files"
)

func newConfigCommand(manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file.",
	}

	cmd.AddCommand(newConfigInitCommand(manager), newConfigShowCommand(manager))
	return cmd
}

func newConfigInitCommand(manager *files.Manager) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config.toml populated with the defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := manager.ConfigPath()
			if err := config.Write(path, config.Default(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCommand(manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(manager)
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", manager.ConfigPath())
			fmt.Fprintf(out, "# reports: %s\n\n", manager.ReportDir())
			_, err = out.Write(data)
			return err
		},
	}
}
