package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/ledger"
	"github.com/faizmokh/jam/internal/logging"
	"github.com/faizmokh/jam/internal/ui"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jam",
		Short: "Start and stop named tasks and chart where the day went.",
		Long: "jam keeps a per-session ledger of named tasks. Start and stop them from the TUI, " +
			"then view how the tracked time splits a 24-hour day. Nothing is saved between runs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(manager)
			if err != nil {
				return err
			}
			if err := manager.EnsureBase(); err != nil {
				return err
			}
			closer, err := logging.Setup(manager.DebugLogPath())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: debug log disabled: %v\n", err)
			}
			defer closer.Close()

			l := ledger.New(cfg.LedgerOptions()...)
			m := ui.NewModel(ctx, l, manager, cfg.ChartOptions())
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newChartCommand(ctx, manager),
		newConfigCommand(manager),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/jam/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
