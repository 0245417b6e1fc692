package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jsamuelsen/quotesync/internal/adapters/clients"
)

// BaseAdapter provides common request handling for ACL adapters.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a new base adapter with the given client and service name.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// ServiceName returns the name of the remote endpoint.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Get performs a GET request and returns the response body.
// On success the caller must close the body; on failure a domain error is returned.
func (a *BaseAdapter) Get(ctx context.Context, path, operation string) (io.ReadCloser, int, error) {
	resp, err := a.client.Get(ctx, path)
	if err != nil {
		return nil, 0, MapHTTPError(nil, err, a.serviceName, operation)
	}

	if mapped := MapHTTPError(resp, nil, a.serviceName, operation); mapped != nil {
		_ = resp.Body.Close()
		return nil, resp.StatusCode, mapped
	}

	return resp.Body, resp.StatusCode, nil
}

// Post performs a POST request with a JSON body and returns the response body.
func (a *BaseAdapter) Post(ctx context.Context, path string, body io.Reader, operation string) (io.ReadCloser, int, error) {
	resp, err := a.client.Post(ctx, path, body)
	if err != nil {
		return nil, 0, MapHTTPError(nil, err, a.serviceName, operation)
	}

	if mapped := MapHTTPError(resp, nil, a.serviceName, operation); mapped != nil {
		_ = resp.Body.Close()
		return nil, resp.StatusCode, mapped
	}

	return resp.Body, resp.StatusCode, nil
}

// DecodeResponse reads and decodes a JSON response body into the target type.
// The body must hold exactly one JSON value. Closes the body after reading.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	dec := json.NewDecoder(body)

	var result T
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("decoding response: unexpected data after JSON value")
	}

	return &result, nil
}

// Translator is a function type that translates an external DTO to a domain type.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice applies a translator function to a slice of external DTOs.
// If any translation fails, returns the first error encountered.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}
