package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotesync/internal/platform/logging"
)

const (
	// HeaderRequestID is the header name for request ID.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID is the header name for correlation ID.
	// A request ID names one hop; a correlation ID follows the whole
	// exchange, including the calls made to the remote quote service.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin.Context key holding the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin.Context key holding the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// idSpec describes one propagated identifier.
type idSpec struct {
	header  string
	key     string
	enrich  func(ctx context.Context, id string) context.Context
	logWith func(ctx context.Context, id string) context.Context
}

// RequestID returns middleware that extracts or generates a request ID.
// The ID is taken from X-Request-ID, or generated as a UUID v4, then
// echoed in the response, stored in gin.Context and in the request
// context, and attached to the context logger.
func RequestID() gin.HandlerFunc {
	return propagateID(idSpec{
		header:  HeaderRequestID,
		key:     ContextKeyRequestID,
		enrich:  ContextWithRequestID,
		logWith: logging.WithRequestID,
	})
}

// CorrelationID returns middleware that handles correlation ID propagation
// the same way RequestID does, using X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return propagateID(idSpec{
		header:  HeaderCorrelationID,
		key:     ContextKeyCorrelationID,
		enrich:  ContextWithCorrelationID,
		logWith: logging.WithCorrelationID,
	})
}

func propagateID(opts idSpec) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(opts.header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(opts.key, id)
		c.Header(opts.header, id)

		ctx := opts.enrich(c.Request.Context(), id)
		c.Request = c.Request.WithContext(opts.logWith(ctx, id))

		c.Next()
	}
}

// GetRequestID extracts the request ID from the gin.Context.
// Returns empty string if not set.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}

// GetCorrelationID extracts the correlation ID from the gin.Context.
// Returns empty string if not set.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}

func getIDFromContext(c *gin.Context, key string) string {
	if id, exists := c.Get(key); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}
