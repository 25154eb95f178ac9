package mexcapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error codes returned by the MEXC spot API that callers commonly branch on.
const (
	ErrCodeInsufficientBalance = -2010
	ErrCodeInvalidSignature    = 700002
	ErrCodeTimestampOutside    = 700003
	ErrCodeInvalidAPIKey       = 10072
)

type ErrorKind int

const (
	// ErrorKindTransport is a connection, TLS, timeout or cancellation failure.
	ErrorKindTransport ErrorKind = iota + 1

	// ErrorKindAPI means the exchange rejected the request.
	ErrorKindAPI

	// ErrorKindDeserialization means the response body did not have the expected shape.
	ErrorKindDeserialization
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "transport"
	case ErrorKindAPI:
		return "api"
	case ErrorKindDeserialization:
		return "deserialization"
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// TransportError wraps a failure that happened before a complete response was received.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mexc: %s %s transport error: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is the error returned by the exchange, either with a non-2xx
// status or with a {"code": ..., "msg": ...} body.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mexc: api error: status=%d code=%d msg=%s", e.StatusCode, e.Code, e.Message)
}

// DecodeError is returned when the response body can not be decoded into the
// expected type. Body keeps the raw payload for inspection.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mexc: unable to decode response %q: %v", truncateBody(e.Body, 256), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first typed error found in the chain of err.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return ErrorKindAPI, true
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return ErrorKindDeserialization, true
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return ErrorKindTransport, true
	}

	return 0, false
}

// IsAPIError reports whether err carries an APIError with the given exchange code.
func IsAPIError(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	return false
}

func truncateBody(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}

	return string(body[:n]) + "..."
}
