package httptesting

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

// MockTransport dispatches requests to handlers registered by method and path.
// Requests are recorded in the order they were received.
type MockTransport struct {
	getHandlers map[string]RoundTripFunc

	Requests []*http.Request
}

func (transport *MockTransport) GET(path string, f RoundTripFunc) {
	if transport.getHandlers == nil {
		transport.getHandlers = make(map[string]RoundTripFunc)
	}

	transport.getHandlers[path] = f
}

func (transport *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var handlers map[string]RoundTripFunc

	switch strings.ToUpper(req.Method) {

	case "GET":
		handlers = transport.getHandlers

	default:
		return nil, errors.Errorf("unsupported mock transport request method: %s", req.Method)

	}

	transport.Requests = append(transport.Requests, req)

	f, ok := handlers[req.URL.Path]
	if !ok {
		return nil, errors.Errorf("roundtrip mock to %s %s is not defined", req.Method, req.URL.Path)
	}

	return f(req)
}

// LastRequest returns the most recent request or nil.
func (transport *MockTransport) LastRequest() *http.Request {
	if len(transport.Requests) == 0 {
		return nil
	}

	return transport.Requests[len(transport.Requests)-1]
}

func ReplyString(statusCode int, content string) RoundTripFunc {
	return func(_ *http.Request) (*http.Response, error) {
		return BuildResponseString(statusCode, content), nil
	}
}

func ReplyJson(statusCode int, rawData interface{}) RoundTripFunc {
	return func(_ *http.Request) (*http.Response, error) {
		return BuildResponseJson(statusCode, rawData), nil
	}
}

func ReplyError(err error) RoundTripFunc {
	return func(_ *http.Request) (*http.Response, error) {
		return nil, err
	}
}
