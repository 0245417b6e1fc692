package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotesync/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotesync/internal/adapters/render"
	"github.com/jsamuelsen/quotesync/internal/adapters/storage"
	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/platform/config"
)

// widget is one command's view of the quote widget: the persistent store,
// a terminal renderer and the use cases on top of them.
type widget struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *storage.SQLiteStore
	store   *app.QuoteStore
	service *app.QuoteService
	render  *render.Renderer
}

// openWidget loads config, opens storage and loads the quote list.
// Callers must Close the widget.
func (a *App) openWidget(cmd *cobra.Command) (*widget, error) {
	ctx := cmd.Context()

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	logger := a.logger(cfg, cmd.ErrOrStderr())

	db, err := storage.OpenSQLite(ctx, storage.SQLiteConfig{
		Path:        cfg.Storage.Path,
		BusyTimeout: cfg.Storage.BusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	store := app.NewQuoteStore(app.QuoteStoreConfig{Storage: db, Logger: logger})
	if err := store.Load(ctx); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	renderer := render.New(render.NewTerminalSurface(cmd.OutOrStdout()))

	// Session storage lives for one invocation, like a browser tab.
	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Session:  storage.NewMemoryStore(),
		Renderer: renderer,
		Logger:   logger,
	})

	return &widget{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		store:   store,
		service: service,
		render:  renderer,
	}, nil
}

// syncer builds a one-shot syncer against the configured remote.
func (w *widget) syncer() (*app.Syncer, error) {
	remote, err := acl.DialRemote(w.cfg.Remote, w.cfg.Client, w.logger)
	if err != nil {
		return nil, err
	}

	mode, err := app.ParseCompareMode(w.cfg.Sync.CompareMode)
	if err != nil {
		return nil, err
	}

	return app.NewSyncer(app.SyncerConfig{
		Store:    w.store,
		Remote:   remote,
		Renderer: w.render,
		Compare:  mode,
		Logger:   w.logger,
	}), nil
}

func (w *widget) Close() error {
	return w.db.Close()
}

// withWidget opens the widget, runs fn and closes the widget.
func (a *App) withWidget(cmd *cobra.Command, fn func(ctx context.Context, w *widget) error) (err error) {
	w, err := a.openWidget(cmd)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, w.Close())
	}()

	return fn(cmd.Context(), w)
}
