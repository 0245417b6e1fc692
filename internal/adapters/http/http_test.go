package http

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotesync/internal/adapters/render"
	"github.com/jsamuelsen/quotesync/internal/adapters/storage"
	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/mocks"
	"github.com/jsamuelsen/quotesync/internal/platform/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig(host string, port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            host,
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxRequestSize:  1 << 20,
	}
}

// freePort asks the kernel for an unused TCP port.
func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

func TestServerNew(t *testing.T) {
	cfg := testServerConfig("127.0.0.1", 8080)
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, logger, srv.logger)
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		port         int
		expectedAddr string
	}{
		{name: "localhost", host: "localhost", port: 8080, expectedAddr: "localhost:8080"},
		{name: "all interfaces", host: "0.0.0.0", port: 3000, expectedAddr: "0.0.0.0:3000"},
		{name: "dynamic port", host: "127.0.0.1", port: 0, expectedAddr: "127.0.0.1:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(testServerConfig(tt.host, tt.port), discardLogger())
			assert.Equal(t, tt.expectedAddr, srv.Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig("127.0.0.1", 0), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	errCh := srv.Start()
	time.Sleep(100 * time.Millisecond)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	_, ok := <-errCh
	assert.False(t, ok, "error channel should be closed")
}

func TestServerRun_StopsOnCancel(t *testing.T) {
	port := freePort(t)
	srv := New(testServerConfig("127.0.0.1", port), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Run(ctx) }()

	url := "http://" + srv.Addr() + "/ping"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx // test request
		if err != nil {
			return false
		}
		resp.Body.Close()

		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServer_BodyLimit(t *testing.T) {
	cfg := testServerConfig("127.0.0.1", 0)
	cfg.MaxRequestSize = 8

	srv := New(cfg, discardLogger())
	srv.Engine().POST("/api/v1/quotes/import", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.Status(http.StatusOK)
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "under limit", body: "[]", want: http.StatusOK},
		{name: "over limit", body: `[{"text":"too long"}]`, want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/import", strings.NewReader(tt.body))
			srv.Engine().ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// widgetRouterConfig wires every handler over in-memory adapters.
func widgetRouterConfig(t *testing.T) RouterConfig {
	t.Helper()

	logger := discardLogger()

	store := app.NewQuoteStore(app.QuoteStoreConfig{Storage: storage.NewMemoryStore(), Logger: logger})
	require.NoError(t, store.Load(context.Background()))

	surface := render.NewMemorySurface()
	renderer := render.New(surface)

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Session:  storage.NewMemoryStore(),
		Renderer: renderer,
		Logger:   logger,
	})

	syncer := app.NewSyncer(app.SyncerConfig{
		Store:    store,
		Remote:   mocks.NewMockRemoteQuoteClient(t),
		Renderer: renderer,
		Logger:   logger,
	})

	return RouterConfig{
		Logger:         logger,
		AppConfig:      &config.AppConfig{Name: "quotesync-test", Environment: "test", Version: "1.0.0"},
		HealthHandler:  handlers.NewHealthHandler(nil, handlers.BuildInfo{Version: "1.0.0"}),
		QuoteHandler:   handlers.NewQuoteHandler(service),
		SyncHandler:    handlers.NewSyncHandler(syncer),
		DisplayHandler: handlers.NewDisplayHandler(surface),
		Timeout:        DefaultRequestTimeout,
	}
}

func TestSetupRouter_RegistersRoutes(t *testing.T) {
	engine := gin.New()
	SetupRouter(engine, widgetRouterConfig(t))

	registered := make(map[string]bool)
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /-/metrics",
		"GET /api/v1/quotes",
		"POST /api/v1/quotes",
		"GET /api/v1/quotes/random",
		"GET /api/v1/quotes/last-viewed",
		"GET /api/v1/quotes/export",
		"POST /api/v1/quotes/import",
		"GET /api/v1/categories",
		"GET /api/v1/filter",
		"PUT /api/v1/filter",
		"POST /api/v1/sync",
		"GET /api/v1/sync",
		"GET /api/v1/display",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestSetupRouter_MiddlewareChain(t *testing.T) {
	engine := gin.New()
	SetupRouter(engine, widgetRouterConfig(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("X-Correlation-ID", "corr-router")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "corr-router", w.Header().Get("X-Correlation-ID"))
	assert.Contains(t, w.Body.String(), "Motivation")
}

func TestSetupRouter_NilHandlers(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
	}{
		{name: "with timeout", timeout: 30 * time.Second},
		{name: "without timeout", timeout: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()

			require.NotPanics(t, func() {
				SetupRouter(engine, RouterConfig{Logger: discardLogger(), Timeout: tt.timeout})
			})

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil))
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestSetupMinimalRouter(t *testing.T) {
	engine := gin.New()
	SetupMinimalRouter(engine, discardLogger(), handlers.NewHealthHandler(nil, handlers.BuildInfo{Version: "1.0.0"}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetupMinimalRouterWithNilHandler(t *testing.T) {
	require.NotPanics(t, func() {
		SetupMinimalRouter(gin.New(), discardLogger(), nil)
	})
}
