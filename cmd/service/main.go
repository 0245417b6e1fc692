// Package main is the entry point for the service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quotesync/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotesync/internal/adapters/http"
	"github.com/jsamuelsen/quotesync/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotesync/internal/adapters/render"
	"github.com/jsamuelsen/quotesync/internal/adapters/storage"
	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/platform/config"
	"github.com/jsamuelsen/quotesync/internal/platform/logging"
	"github.com/jsamuelsen/quotesync/internal/platform/telemetry"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Open persistent storage; session storage is per process
	db, err := storage.OpenSQLite(ctx, storage.SQLiteConfig{
		Path:        cfg.Storage.Path,
		BusyTimeout: cfg.Storage.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}

	defer func() {
		err = errors.Join(err, db.Close())
	}()

	session := storage.NewMemoryStore()

	// 6. Create the remote quote client (ACL pattern)
	remote, err := acl.DialRemote(cfg.Remote, cfg.Client, logger)
	if err != nil {
		return err
	}

	// 7. Metrics, store and display
	syncMetrics, err := telemetry.NewSyncMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering sync metrics: %w", err)
	}

	store := app.NewQuoteStore(app.QuoteStoreConfig{
		Storage: db,
		OnSize:  syncMetrics.StoreSize,
		Logger:  logger,
	})
	if err := store.Load(ctx); err != nil {
		return err
	}

	surface := render.NewMemorySurface()
	renderer := render.New(surface)

	// 8. Application services
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Session:  session,
		Renderer: renderer,
		Logger:   logger,
	})
	if err := quoteService.Restore(ctx); err != nil {
		return err
	}

	compare, err := app.ParseCompareMode(cfg.Sync.CompareMode)
	if err != nil {
		return err
	}

	syncer := app.NewSyncer(app.SyncerConfig{
		Store:    store,
		Remote:   remote,
		Renderer: renderer,
		Compare:  compare,
		Metrics:  syncMetrics,
		Logger:   logger,
	})

	// 9. Health checks; the remote is optional so an outage only degrades readiness
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(db); err != nil {
		return fmt.Errorf("registering storage health check: %w", err)
	}

	if err := healthRegistry.Register(ports.Optional(remote)); err != nil {
		return fmt.Errorf("registering remote health check: %w", err)
	}

	// 10. HTTP server and router
	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:         logger,
		AppConfig:      &cfg.App,
		HealthHandler:  handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		QuoteHandler:   handlers.NewQuoteHandler(quoteService),
		SyncHandler:    handlers.NewSyncHandler(syncer),
		DisplayHandler: handlers.NewDisplayHandler(surface),
		Timeout:        http.DefaultRequestTimeout,
	})

	// 11. Serve and sync until a signal arrives
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gctx)
	})

	if cfg.Sync.Enabled {
		scheduler := app.NewScheduler(syncer, cfg.Sync.Interval, logger)
		g.Go(func() error {
			return scheduler.Run(gctx)
		})
	} else {
		logger.Info("periodic sync disabled")
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
