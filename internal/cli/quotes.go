package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the quotes matching the current category filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.withWidget(cmd, func(ctx context.Context, w *widget) error {
				_, err := w.service.View(ctx)
				return err
			})
		},
	}
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text> <category>",
		Short: "Add a quote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withWidget(cmd, func(ctx context.Context, w *widget) error {
				_, err := w.service.AddQuote(ctx, args[0], args[1])
				return err
			})
		},
	}
}

func newRandomCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show one random quote from the current category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.withWidget(cmd, func(ctx context.Context, w *widget) error {
				_, err := w.service.ShowRandom(ctx)
				if errors.Is(err, domain.ErrNotFound) {
					return errors.New("no quotes in the current category")
				}

				return err
			})
		},
	}
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the distinct categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.withWidget(cmd, func(ctx context.Context, w *widget) error {
				current, err := w.service.Filter(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, c := range append([]string{domain.FilterAll}, w.service.Categories()...) {
					marker := " "
					if c == current {
						marker = "*"
					}

					fmt.Fprintf(out, "%s %s\n", marker, c)
				}

				return nil
			})
		},
	}
}

func newFilterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "filter [category]",
		Short: `Show or change the category filter ("all" shows everything)`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withWidget(cmd, func(ctx context.Context, w *widget) error {
				if len(args) == 0 {
					current, err := w.service.Filter(ctx)
					if err != nil {
						return err
					}

					fmt.Fprintln(cmd.OutOrStdout(), current)

					return nil
				}

				_, err := w.service.SetFilter(ctx, args[0])

				return err
			})
		},
	}
}
