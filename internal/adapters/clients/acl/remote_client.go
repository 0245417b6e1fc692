package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotesync/internal/adapters/clients"
	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/platform/config"
	"github.com/jsamuelsen/quotesync/internal/platform/logging"
)

// RemoteClientConfig contains configuration for the remote quote client.
type RemoteClientConfig struct {
	// Client is the HTTP client to use for requests.
	// Its BaseURL points at the remote endpoint host.
	Client *clients.Client

	// Path is the collection path, e.g. "/posts".
	Path string

	// DefaultCategory is assigned to every fetched quote.
	DefaultCategory string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// RemoteClient implements ports.RemoteQuoteClient against a JSON
// collection endpoint that lists objects with a "title" field.
type RemoteClient struct {
	BaseAdapter
	path            string
	defaultCategory string
	logger          *slog.Logger
}

// NewRemoteClient creates a new remote quote client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewRemoteClient(cfg RemoteClientConfig) *RemoteClient {
	if cfg.Client == nil {
		panic("RemoteClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	category := cfg.DefaultCategory
	if category == "" {
		category = "General"
	}

	return &RemoteClient{
		BaseAdapter:     NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		path:            cfg.Path,
		defaultCategory: category,
		logger:          logger,
	}
}

// DialRemote builds the HTTP client and the adapter for the configured
// remote endpoint.
func DialRemote(remote config.RemoteConfig, client config.ClientConfig, logger *slog.Logger) (*RemoteClient, error) {
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     remote.BaseURL,
		ServiceName: remote.Name,
		Timeout:     client.Timeout,
		Transport:   client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating remote client: %w", err)
	}

	return NewRemoteClient(RemoteClientConfig{
		Client:          httpClient,
		Path:            remote.Path,
		DefaultCategory: remote.DefaultCategory,
		Logger:          logger,
	}), nil
}

// remoteItem is the external DTO. Only the title is used; every other
// field the endpoint sends (id, userId, body) is ignored.
type remoteItem struct {
	Title string `json:"title"`
}

// FetchQuotes retrieves the remote list and translates it to domain quotes.
// Implements ports.RemoteQuoteClient.
func (c *RemoteClient) FetchQuotes(ctx context.Context) ([]domain.Quote, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", c.path))

	body, status, err := c.Get(ctx, c.path, "fetch quotes")
	if err != nil {
		return nil, err
	}

	items, err := DecodeResponse[[]remoteItem](body)
	if err != nil {
		return nil, domain.NewParseError(c.ServiceName()+" response", err)
	}

	quotes, err := TranslateSlice(*items, c.translateToDomain)
	if err != nil {
		return nil, err
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated remote items",
		slog.Int("status", status),
		slog.Int("count", len(quotes)))

	return quotes, nil
}

// PushQuotes posts the full local list as a JSON array.
// Implements ports.RemoteQuoteClient.
func (c *RemoteClient) PushQuotes(ctx context.Context, quotes []domain.Quote) error {
	if quotes == nil {
		quotes = []domain.Quote{}
	}

	payload, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("encoding quotes: %w", err)
	}

	body, status, err := c.Post(ctx, c.path, bytes.NewReader(payload), "push quotes")
	if err != nil {
		return err
	}
	_ = body.Close()

	c.logger.InfoContext(ctx, "quotes pushed to remote",
		slog.Int("status", status),
		slog.Int("count", len(quotes)))

	return nil
}

// translateToDomain converts one remote item to a domain Quote.
// Remote data is trusted as-is; an empty title is kept.
func (c *RemoteClient) translateToDomain(ext *remoteItem) (domain.Quote, error) {
	return domain.Quote{
		Text:     ext.Title,
		Category: c.defaultCategory,
	}, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *RemoteClient) Name() string {
	return c.ServiceName()
}

// Check verifies the remote collection answers 2xx.
// Implements ports.HealthChecker.
func (c *RemoteClient) Check(ctx context.Context) error {
	body, _, err := c.Get(ctx, c.path, "health check")
	if err != nil {
		return err
	}

	return body.Close()
}
