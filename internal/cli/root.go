// Package cli implements quotectl, a command-line front end for the quote
// widget. It works on the same SQLite store as the service.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotesync/internal/platform/config"
	"github.com/jsamuelsen/quotesync/internal/platform/logging"
)

// App carries the persistent flags shared by every command.
type App struct {
	Profile   string
	ConfigDir string
	LogLevel  string
}

// NewRootCmd builds the quotectl command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "quotectl",
		Short:         "Manage the quote widget from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Show the quotes for the current category
  quotectl list

  # Add a quote and switch to its category
  quotectl add "Less is more." Design
  quotectl filter Design

  # Back up and restore
  quotectl export backup.json
  quotectl import backup.json
`),
	}

	cmd.PersistentFlags().StringVar(&app.Profile, "profile", envOr("APP_ENVIRONMENT", "local"), "Configuration profile (configs/<profile>.yaml)")
	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", "configs", "Directory holding base.yaml and profile files")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "warn", "Log level for diagnostics on stderr")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newRandomCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newFilterCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newSyncCmd(app))

	return cmd
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCmd()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		return 1
	}

	return 0
}

// loadConfig loads and validates the configuration for the selected profile.
func (a *App) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(a.ConfigDir, a.Profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// logger writes diagnostics to w so they never mix with command output.
func (a *App) logger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logging.NewWithWriter(&logging.Config{
		Level:   a.LogLevel,
		Format:  "text",
		Service: cfg.App.Name + "-cli",
		Version: cfg.App.Version,
	}, w)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
