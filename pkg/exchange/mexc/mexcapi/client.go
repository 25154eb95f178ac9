package mexcapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/mexcgo/pkg/envvar"
)

const defaultHTTPTimeout = time.Second * 15

const (
	ProductionRestBaseURL = "https://api.mexc.com"

	// there is no public spot sandbox, the test endpoint points to a
	// self-hosted mock unless MEXC_TEST_BASE_URL overrides it.
	defaultTestRestBaseURL = "http://localhost:8080"

	APIKeyHeader = "X-MEXC-APIKEY"

	// MaxRecvWindow is the largest receive window (ms) accepted by the exchange.
	MaxRecvWindow = 60000
)

var log = logrus.WithField("exchange", "mexc")

var htmlTagPattern = regexp.MustCompile("<[/]?[a-zA-Z-]+.*?>")

// Endpoint selects the host the client talks to.
type Endpoint int

const (
	EndpointProduction Endpoint = iota
	EndpointTest
)

func (e Endpoint) String() string {
	switch e {
	case EndpointProduction:
		return "production"
	case EndpointTest:
		return "test"
	}

	return "Endpoint(" + strconv.Itoa(int(e)) + ")"
}

func (e Endpoint) URL() string {
	switch e {
	case EndpointTest:
		u, _ := envvar.String("MEXC_TEST_BASE_URL", defaultTestRestBaseURL)
		return u
	}

	return ProductionRestBaseURL
}

func ParseEndpoint(s string) (Endpoint, error) {
	switch strings.ToLower(s) {
	case "", "production", "prod", "live":
		return EndpointProduction, nil
	case "test", "testnet", "sandbox":
		return EndpointTest, nil
	}

	return 0, fmt.Errorf("unknown mexc endpoint: %q", s)
}

type RestClient struct {
	requestgen.BaseAPIClient

	key, secret string

	// recvWindow is attached to every signed request that does not set its own
	recvWindow int64

	// timeOffset is serverTime - localTime in milliseconds
	timeOffset int64
}

func NewClient(endpoint Endpoint) *RestClient {
	timeout, _ := envvar.Duration("MEXC_HTTP_TIMEOUT", defaultHTTPTimeout)
	return NewClientWithBaseURL(endpoint.URL(), &http.Client{
		Timeout: timeout,
	})
}

// ParseBaseURL checks the base url is an absolute http(s) url. A path prefix
// like http://proxy/mexc is kept in front of the api paths.
func ParseBaseURL(baseURL string) (*url.URL, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", baseURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	if len(u.Host) == 0 {
		return nil, fmt.Errorf("invalid base url %q: empty host", baseURL)
	}

	return u, nil
}

// NewClientWithBaseURL panics on an invalid baseURL, use ParseBaseURL first for
// user provided urls.
func NewClientWithBaseURL(baseURL string, httpClient *http.Client) *RestClient {
	u, err := ParseBaseURL(baseURL)
	if err != nil {
		panic(err)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL:    u,
			HttpClient: httpClient,
		},
	}
}

func (c *RestClient) Auth(key, secret string) {
	c.key = key
	// pragma: allowlist nextline secret
	c.secret = secret
}

// SetRecvWindow sets the default receive window in milliseconds, 0 disables it.
func (c *RestClient) SetRecvWindow(ms int64) error {
	if err := validateRecvWindow(ms); err != nil && ms != 0 {
		return err
	}

	c.recvWindow = ms
	return nil
}

// String never prints the credentials.
func (c *RestClient) String() string {
	return fmt.Sprintf("mexcapi.RestClient{baseURL: %s, key: %s}", c.BaseURL, maskSecret(c.key))
}

// SetTimeOffsetFromServer queries the server time and stores the clock skew
// so that request timestamps follow the server clock.
func (c *RestClient) SetTimeOffsetFromServer(ctx context.Context) error {
	before := time.Now()
	serverTime, err := c.NewGetServerTimeRequest().Do(ctx)
	if err != nil {
		return err
	}

	// assume the server stamped the response at the middle of the round trip
	local := before.Add(time.Since(before) / 2)
	offset := serverTime.Time().UnixMilli() - local.UnixMilli()
	atomic.StoreInt64(&c.timeOffset, offset)

	log.Debugf("mexc server time offset: %dms", offset)
	return nil
}

func (c *RestClient) TimeOffset() time.Duration {
	return time.Duration(atomic.LoadInt64(&c.timeOffset)) * time.Millisecond
}

func (c *RestClient) timestamp() int64 {
	return time.Now().UnixMilli() + atomic.LoadInt64(&c.timeOffset)
}

// NewRequest create new API request. Relative url can be provided in refURL.
func (c *RestClient) NewRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	if params != nil {
		rel.RawQuery = params.Encode()
	}

	return c.newHTTPRequest(ctx, method, rel, payload)
}

// NewAuthenticatedRequest creates new http request for signed routes.
// The timestamp (and the default recvWindow) is attached here and the query
// string is signed exactly as it will be transmitted.
func (c *RestClient) NewAuthenticatedRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	if len(c.key) == 0 {
		return nil, errors.New("empty api key")
	}

	if len(c.secret) == 0 {
		return nil, errors.New("empty api secret")
	}

	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	for k, v := range params {
		if k == signatureParam {
			continue
		}
		query[k] = append([]string(nil), v...)
	}

	if query.Has("recvWindow") {
		recvWindow, err := strconv.ParseInt(query.Get("recvWindow"), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid recvWindow %q", query.Get("recvWindow"))
		}

		if err := validateRecvWindow(recvWindow); err != nil {
			return nil, err
		}
	} else if c.recvWindow > 0 {
		query.Set("recvWindow", strconv.FormatInt(c.recvWindow, 10))
	}

	query.Set("timestamp", strconv.FormatInt(c.timestamp(), 10))

	rel.RawQuery = SignQuery(query, c.secret)

	req, err := c.newHTTPRequest(ctx, method, rel, payload)
	if err != nil {
		return nil, err
	}

	req.Header.Add(APIKeyHeader, c.key)
	return req, nil
}

func (c *RestClient) newHTTPRequest(ctx context.Context, method string, rel *url.URL, payload interface{}) (*http.Request, error) {
	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	// the api path is appended to the path prefix of the base url
	pathURL := *c.BaseURL
	pathURL.Path = path.Join("/", c.BaseURL.Path, rel.Path)
	pathURL.RawPath = ""
	pathURL.RawQuery = rel.RawQuery

	req, err := http.NewRequestWithContext(ctx, method, pathURL.String(), reader)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req, nil
}

// SendRequest sends the request to the API server and reads the response.
// Network failures are returned as *TransportError and non-2xx responses as
// *APIError, the response is returned whenever it was read.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	start := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		recordLatencyMetrics(req, 0, time.Since(start))
		return nil, &TransportError{Method: req.Method, Path: req.URL.Path, Err: err}
	}

	// newResponse reads the response body and return a new Response object
	response, err := requestgen.NewResponse(resp)
	if err != nil {
		recordLatencyMetrics(req, resp.StatusCode, time.Since(start))
		return response, &TransportError{Method: req.Method, Path: req.URL.Path, Err: err}
	}

	recordLatencyMetrics(req, response.StatusCode, time.Since(start))

	// the query string carries the signature, log the path only
	log.Debugf("%s %s -> %d (%s)", req.Method, req.URL.Path, response.StatusCode, time.Since(start))

	if !isSuccessStatus(response.StatusCode) {
		_, err := ParseResponse(response)
		return response, err
	}

	return response, nil
}

func validateRecvWindow(ms int64) error {
	if ms <= 0 || ms > MaxRecvWindow {
		return fmt.Errorf("recvWindow must be in (0, %d], got %d", MaxRecvWindow, ms)
	}

	return nil
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return "******"
	}

	return s[:4] + "******"
}

func castPayload(payload interface{}) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	switch v := payload.(type) {
	case string:
		return []byte(v), nil

	case []byte:
		return v, nil

	}
	return json.Marshal(payload)
}
