// Package clients provides the instrumented HTTP client used to reach the
// remote quote endpoint.
package clients

import "errors"

// Client errors represent failures in the HTTP client layer.
// These are distinct from domain errors - they represent infrastructure failures
// that should be translated to domain errors by the calling code.
var (
	// ErrRequestFailed wraps a transport-level failure (DNS, refused connection,
	// timeout). The request is never retried.
	ErrRequestFailed = errors.New("request failed")
)
