// Package apierr provides transport-level error sentinels and retry
// infrastructure for the Adobe Connect HTTP client. HTTP failures are
// classified into these sentinels at the client boundary; errors reported
// by the vendor inside an XML body are not transport errors and live in
// package adobeconnect.
//
// Callers check with errors.Is(err, apierr.ErrTimeout) etc.
package apierr

import "errors"

// Sentinel errors for API interaction failures.
var (
	// ErrRateLimit indicates the server throttled the request (temporary, retryable).
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrTimeout indicates a request timed out.
	ErrTimeout = errors.New("request timeout")

	// ErrAuthFailed indicates the server rejected the credentials at the HTTP level.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrBadRequest indicates a client error (4xx) that is not otherwise classified.
	ErrBadRequest = errors.New("bad request")

	// ErrServer indicates a server-side failure (5xx), retryable.
	ErrServer = errors.New("server error")
)
