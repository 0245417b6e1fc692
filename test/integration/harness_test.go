//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotesync/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/quotesync/internal/adapters/http"
	"github.com/jsamuelsen/quotesync/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotesync/internal/adapters/render"
	"github.com/jsamuelsen/quotesync/internal/adapters/storage"
	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/platform/config"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// fakeRemote is a JSON collection endpoint in the shape of /posts.
type fakeRemote struct {
	mu     sync.Mutex
	titles []string
	down   bool
	pushes [][]map[string]string
	server *httptest.Server
}

func newFakeRemote() *fakeRemote {
	r := &fakeRemote{}
	r.server = httptest.NewServer(http.HandlerFunc(r.serve))

	return r
}

func (r *fakeRemote) serve(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.down {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	switch req.Method {
	case http.MethodGet:
		items := make([]map[string]any, len(r.titles))
		for i, t := range r.titles {
			items[i] = map[string]any{"id": i + 1, "userId": 1, "title": t, "body": "ignored"}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(items)
	case http.MethodPost:
		var pushed []map[string]string
		if err := json.NewDecoder(req.Body).Decode(&pushed); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		r.pushes = append(r.pushes, pushed)
		w.WriteHeader(http.StatusCreated)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (r *fakeRemote) serveTitles(titles ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.titles = titles
	r.down = false
}

func (r *fakeRemote) setDown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.down = true
}

func (r *fakeRemote) pushCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pushes)
}

const configDir = "../../configs"

// stack is the service wired the way cmd/service wires it, over a
// temporary SQLite file and a fake remote.
type stack struct {
	dir    string
	db     *storage.SQLiteStore
	remote *fakeRemote
	server *httptest.Server
}

func newStack(ctx context.Context) (*stack, error) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "quotesync-it-*")
	if err != nil {
		return nil, err
	}

	remote := newFakeRemote()

	cfg, err := config.LoadFrom(configDir, "test")
	if err != nil {
		return nil, err
	}

	cfg.Storage.Path = filepath.Join(dir, "quotes.db")
	cfg.Remote.BaseURL = remote.server.URL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := storage.OpenSQLite(ctx, storage.SQLiteConfig{
		Path:        cfg.Storage.Path,
		BusyTimeout: cfg.Storage.BusyTimeout,
	})
	if err != nil {
		return nil, err
	}

	client, err := acl.DialRemote(cfg.Remote, cfg.Client, logger)
	if err != nil {
		return nil, err
	}

	compare, err := app.ParseCompareMode(cfg.Sync.CompareMode)
	if err != nil {
		return nil, err
	}

	store := app.NewQuoteStore(app.QuoteStoreConfig{Storage: db, Logger: logger})
	if err := store.Load(ctx); err != nil {
		return nil, err
	}

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
		Remote:   client,
		Renderer: renderer,
		Compare:  compare,
		Logger:   logger,
	})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(db); err != nil {
		return nil, err
	}

	if err := registry.Register(ports.Optional(client)); err != nil {
		return nil, err
	}

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:         logger,
		AppConfig:      &cfg.App,
		HealthHandler:  handlers.NewHealthHandler(registry, handlers.NewBuildInfo("it", "none", "now")),
		QuoteHandler:   handlers.NewQuoteHandler(service),
		SyncHandler:    handlers.NewSyncHandler(syncer),
		DisplayHandler: handlers.NewDisplayHandler(surface),
		Timeout:        httpadapter.DefaultRequestTimeout,
	})

	return &stack{
		dir:    dir,
		db:     db,
		remote: remote,
		server: httptest.NewServer(engine),
	}, nil
}

func (s *stack) Close() {
	s.server.Close()
	s.remote.server.Close()
	_ = s.db.Close()
	_ = os.RemoveAll(s.dir)
}
