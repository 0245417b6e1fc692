package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync cycle against the remote endpoint",
		Long: `Fetches the remote list, replaces the local list when they differ
(remote wins) and pushes the result back. Remote failures are reported
but do not fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.withWidget(cmd, func(ctx context.Context, w *widget) error {
				syncer, err := w.syncer()
				if err != nil {
					return err
				}

				report := syncer.RunOnce(ctx)
				out := cmd.ErrOrStderr()

				switch {
				case report.FetchErr != nil:
					fmt.Fprintf(out, "sync skipped: %v\n", report.FetchErr)
				case report.Conflict:
					fmt.Fprintf(out, "remote changes applied (%d quotes)\n", report.Fetched)
				default:
					fmt.Fprintln(out, "already in sync")
				}

				if report.PushErr != nil {
					fmt.Fprintf(out, "push failed: %v\n", report.PushErr)
				}

				return nil
			})
		},
	}
}
