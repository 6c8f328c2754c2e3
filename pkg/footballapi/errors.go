package footballapi

import (
	"errors"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrInvalidRequest marks a request that could not be built (bad base URL,
	// unknown operation, missing required parameter). Nothing was sent.
	ErrInvalidRequest = crerr.New("invalid football api request")
	// ErrPlaceholderAPIKey is returned by CheckAPIKey for the fallback key.
	ErrPlaceholderAPIKey = crerr.New("football api key is not configured")
)

// TransportError means no HTTP response was obtained: DNS, connect, TLS,
// timeout or a cancelled context.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("football api transport error for %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError means the server answered with a non-2xx status.
type HTTPStatusError struct {
	Code     int
	Endpoint string
	// Body is a trimmed snippet of the response body.
	Body string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("football api %s returned status %d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("football api %s returned status %d: %s", e.Endpoint, e.Code, e.Body)
}

// DecodingError means a body was received but did not match the expected shape.
type DecodingError struct {
	Details string
	Err     error
}

func (e *DecodingError) Error() string {
	return "football api decoding failed: " + e.Details
}

func (e *DecodingError) Unwrap() error { return e.Err }

// APIError carries the messages of a non-empty "errors" field in an otherwise
// successful envelope, e.g. a rejected key or an unknown league.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	return "football api rejected request: " + strings.Join(e.Messages, "; ")
}

func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var target *HTTPStatusError
	if errors.As(err, &target) {
		return target.Code, true
	}
	return 0, false
}

func IsDecoding(err error) bool {
	var target *DecodingError
	return errors.As(err, &target)
}

func IsAPIError(err error) bool {
	var target *APIError
	return errors.As(err, &target)
}
