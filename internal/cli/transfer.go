package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// DefaultExportFile is written by export when no path is given.
const DefaultExportFile = "quotes.json"

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write every quote to a JSON file (\"-\" for stdout)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultExportFile
			if len(args) == 1 {
				path = args[0]
			}

			return app.withWidget(cmd, func(ctx context.Context, w *widget) error {
				if path == "-" {
					return w.service.Export(ctx, cmd.OutOrStdout())
				}

				return exportToFile(ctx, w, path, cmd.OutOrStdout())
			})
		},
	}
}

func exportToFile(ctx context.Context, w *widget, path string, out io.Writer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := w.service.Export(ctx, f); err != nil {
		return err
	}

	fmt.Fprintf(out, "exported %d quotes to %s\n", w.service.Count(), path)

	return nil
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append the quotes of a JSON file (\"-\" for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withWidget(cmd, func(ctx context.Context, w *widget) error {
				var r io.Reader = cmd.InOrStdin()

				if args[0] != "-" {
					f, err := os.Open(args[0])
					if err != nil {
						return fmt.Errorf("opening import file: %w", err)
					}
					defer f.Close()

					r = f
				}

				_, err := w.service.Import(ctx, r)

				return err
			})
		},
	}
}
