// Package acl is the Anti-Corruption Layer between the remote quote endpoint
// and the domain.
//
// The remote endpoint speaks its own vocabulary: it returns post objects
// whose "title" is the only field we care about, and it knows nothing of
// categories. The ACL keeps that vocabulary out of the domain:
//
//   - External DTOs are unexported and never leave this package
//   - Every remote item becomes a [domain.Quote] with the configured
//     default category
//   - Transport failures and non-2xx statuses become
//     [domain.ErrUnavailable]
//   - Undecodable bodies become [domain.ErrParse]
//
// # Package Components
//
//   - [BaseAdapter]: embeddable request helper with error mapping
//   - [MapHTTPError]: HTTP response / client error to domain error
//   - [ParseErrorResponse]: JSON error body parsing
//   - [DecodeResponse]: generic JSON response decoder
//   - [TranslateSlice]: batch translation helper
//   - [RemoteClient]: the ports.RemoteQuoteClient implementation
//
// Requests are single-attempt. A failed fetch or push is reported to the
// caller once and never retried here.
package acl
