package apierr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// StatusError is a non-200 HTTP reply.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// maxBodyInMessage caps how much of an error body is kept in messages.
const maxBodyInMessage = 200

// NewStatusError builds a StatusError, truncating the body for display.
func NewStatusError(statusCode int, body []byte) *StatusError {
	msg := string(body)
	if len(msg) > maxBodyInMessage {
		msg = msg[:maxBodyInMessage] + "..."
	}
	return &StatusError{StatusCode: statusCode, Body: msg}
}

// Classify maps transport failures to sentinel errors.
// Errors that are not recognized are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", statusErr, ErrRateLimit)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", statusErr, ErrAuthFailed)
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			return fmt.Errorf("%w: %w", statusErr, ErrTimeout)
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
			return fmt.Errorf("%w: %w", statusErr, ErrServer)
		}
		if statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
			return fmt.Errorf("%w: %w", statusErr, ErrBadRequest)
		}
		return statusErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", ErrTimeout)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", err, ErrTimeout)
	}

	return err
}

// IsRetryable reports whether a classified error is transient.
func IsRetryable(err error) bool {
	// Cancellation wins over everything else.
	if errors.Is(err, context.Canceled) {
		return false
	}

	return errors.Is(err, ErrRateLimit) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServer)
}
