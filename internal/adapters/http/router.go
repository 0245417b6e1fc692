package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotesync/internal/platform/config"
	"github.com/jsamuelsen/quotesync/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
// Nil handlers leave their routes unregistered.
type RouterConfig struct {
	// Logger is the base logger stored in every request context.
	Logger *slog.Logger

	// AppConfig names the service in traces.
	AppConfig *config.AppConfig

	HealthHandler  *handlers.HealthHandler
	QuoteHandler   *handlers.QuoteHandler
	SyncHandler    *handlers.SyncHandler
	DisplayHandler *handlers.DisplayHandler

	// Timeout is the request deadline for /api/v1. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Context logger
//  3. Request ID and correlation ID
//  4. OpenTelemetry tracing, then Prometheus request metrics
//  5. Logging (skips /-/ endpoints)
//  6. Timeout (/api/v1 only)
//
// Route groups:
//   - /-/ (internal): health checks, build info and metrics
//   - /api/v1/: the quote widget API
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "quotesync"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(nil),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	}

	if cfg.SyncHandler != nil {
		cfg.SyncHandler.RegisterSyncRoutes(rg)
	}

	if cfg.DisplayHandler != nil {
		cfg.DisplayHandler.RegisterDisplayRoutes(rg)
	}
}

// SetupMinimalRouter sets up a router with just the health endpoints.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(nil),
		middleware.ContextLogger(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
