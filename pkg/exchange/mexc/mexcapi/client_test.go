package mexcapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/mexcgo/pkg/testing/httptesting"
	"github.com/c9s/mexcgo/pkg/testutil"
)

const (
	testKey    = "mx0vglBqh6abc123"
	testSecret = "45d0b3c26f2644f19bfb98b07741b2f5"
)

func getTestClientOrSkip(t *testing.T) *RestClient {
	testutil.SkipIfCI(t)

	key, secret, ok := testutil.IntegrationTestConfigured(t, "MEXC")
	if !ok {
		t.Skip("MEXC_* env vars are not configured")
		return nil
	}

	client := NewClient(EndpointProduction)
	client.Auth(key, secret)
	return client
}

func newMockClient(transport *httptesting.MockTransport) *RestClient {
	client := NewClientWithBaseURL(ProductionRestBaseURL, &http.Client{Transport: transport})
	client.Auth(testKey, testSecret)
	return client
}

// verifySignedQuery checks the raw query ends with a signature of the
// exact bytes that precede it.
func verifySignedQuery(t *testing.T, rawQuery string) url.Values {
	idx := strings.LastIndex(rawQuery, "&signature=")
	require.True(t, idx >= 0, "signature must be the last field: %s", rawQuery)

	signed, signature := rawQuery[:idx], rawQuery[idx+len("&signature="):]
	assert.Equal(t, Sign(signed, testSecret), signature)

	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	return values
}

func TestRestClient_NewAuthenticatedRequest(t *testing.T) {
	client := NewClientWithBaseURL(ProductionRestBaseURL, nil)
	client.Auth(testKey, testSecret)

	params := url.Values{}
	params.Set("symbol", "MXUSDT")

	before := time.Now().UnixMilli()
	req, err := client.NewAuthenticatedRequest(context.Background(), "GET", "/api/v3/order", params, nil)
	require.NoError(t, err)

	assert.Equal(t, "api.mexc.com", req.URL.Host)
	assert.Equal(t, "/api/v3/order", req.URL.Path)
	assert.Equal(t, testKey, req.Header.Get(APIKeyHeader))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	values := verifySignedQuery(t, req.URL.RawQuery)
	assert.Equal(t, "MXUSDT", values.Get("symbol"))
	assert.False(t, values.Has("recvWindow"))

	ts, err := strconv.ParseInt(values.Get("timestamp"), 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, before, ts, 5000)

	// the caller's params are not modified
	assert.False(t, params.Has("timestamp"))
}

func TestRestClient_NewAuthenticatedRequest_RecvWindow(t *testing.T) {
	client := NewClientWithBaseURL(ProductionRestBaseURL, nil)
	client.Auth(testKey, testSecret)
	require.NoError(t, client.SetRecvWindow(5000))

	req, err := client.NewAuthenticatedRequest(context.Background(), "GET", "/api/v3/account", nil, nil)
	require.NoError(t, err)
	values := verifySignedQuery(t, req.URL.RawQuery)
	assert.Equal(t, "5000", values.Get("recvWindow"))

	// the request's own recvWindow wins
	params := url.Values{}
	params.Set("recvWindow", "10000")
	req, err = client.NewAuthenticatedRequest(context.Background(), "GET", "/api/v3/account", params, nil)
	require.NoError(t, err)
	values = verifySignedQuery(t, req.URL.RawQuery)
	assert.Equal(t, []string{"10000"}, values["recvWindow"])
}

func TestRestClient_SetRecvWindow(t *testing.T) {
	client := NewClientWithBaseURL(ProductionRestBaseURL, nil)
	assert.NoError(t, client.SetRecvWindow(MaxRecvWindow))
	assert.NoError(t, client.SetRecvWindow(0))
	assert.Error(t, client.SetRecvWindow(MaxRecvWindow+1))
	assert.Error(t, client.SetRecvWindow(-1))
}

func TestRestClient_NewAuthenticatedRequest_EmptyCredentials(t *testing.T) {
	client := NewClientWithBaseURL(ProductionRestBaseURL, nil)
	_, err := client.NewAuthenticatedRequest(context.Background(), "GET", "/api/v3/account", nil, nil)
	assert.EqualError(t, err, "empty api key")

	client.Auth(testKey, "")
	_, err = client.NewAuthenticatedRequest(context.Background(), "GET", "/api/v3/account", nil, nil)
	assert.EqualError(t, err, "empty api secret")
}

func TestRestClient_String(t *testing.T) {
	client := NewClientWithBaseURL(ProductionRestBaseURL, nil)
	client.Auth(testKey, testSecret)
	s := client.String()
	assert.NotContains(t, s, testKey)
	assert.NotContains(t, s, testSecret)
	assert.Contains(t, s, "mx0v******")
}

func TestRestClient_TransportError(t *testing.T) {
	client := NewClientWithBaseURL(ProductionRestBaseURL, httptesting.HttpClientWithError(errors.New("connection refused")))
	client.Auth(testKey, testSecret)

	_, err := client.NewGetAccountInformationRequest().Do(context.Background())
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, ErrorKindTransport, kind)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRestClient_ContextCanceled(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/ping", func(req *http.Request) (*http.Response, error) {
		return nil, req.Context().Err()
	})

	client := newMockClient(transport)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.NewPingRequest().Do(ctx)
	assert.True(t, errors.Is(err, context.Canceled))

	kind, _ := KindOf(err)
	assert.Equal(t, ErrorKindTransport, kind)
}

func TestRestClient_SetTimeOffsetFromServer(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/time", func(req *http.Request) (*http.Response, error) {
		serverTime := time.Now().Add(3 * time.Second).UnixMilli()
		return httptesting.BuildResponseJson(http.StatusOK, map[string]int64{"serverTime": serverTime}), nil
	})

	client := newMockClient(transport)
	require.NoError(t, client.SetTimeOffsetFromServer(context.Background()))
	assert.InDelta(t, float64(3*time.Second), float64(client.TimeOffset()), float64(500*time.Millisecond))

	req, err := client.NewAuthenticatedRequest(context.Background(), "GET", "/api/v3/account", nil, nil)
	require.NoError(t, err)
	ts, err := strconv.ParseInt(req.URL.Query().Get("timestamp"), 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(3*time.Second).UnixMilli(), ts, 1000)
}

func TestRestClient_Ping(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/ping", httptesting.ReplyString(http.StatusOK, `{}`))

	client := newMockClient(transport)
	_, err := client.NewPingRequest().Do(context.Background())
	assert.NoError(t, err)

	// public endpoints are not signed
	req := transport.LastRequest()
	require.NotNil(t, req)
	assert.Empty(t, req.URL.RawQuery)
	assert.Empty(t, req.Header.Get(APIKeyHeader))
}

func TestRestClient_HTMLErrorPage(t *testing.T) {
	client := NewClientWithBaseURL(ProductionRestBaseURL, httptesting.HttpClientWithStatus(http.StatusBadGateway, "<html><body><h1>502 Bad Gateway</h1></body></html>"))

	_, err := client.NewPingRequest().Do(context.Background())
	var apiErr *APIError
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.NotContains(t, apiErr.Message, "<h1>")
	}
}

func TestRestClient_GetServerTime(t *testing.T) {
	var saved *http.Request
	client := NewClientWithBaseURL(ProductionRestBaseURL, httptesting.HttpClientSaver(&saved, `{"serverTime":"1666676533741"}`))

	serverTime, err := client.NewGetServerTimeRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1666676533741), serverTime.Time().UnixMilli())

	require.NotNil(t, saved)
	assert.Equal(t, "/api/v3/time", saved.URL.Path)
	assert.Empty(t, saved.URL.RawQuery)
}

func TestParseBaseURL(t *testing.T) {
	u, err := ParseBaseURL("http://127.0.0.1:8080/mexc")
	require.NoError(t, err)
	assert.Equal(t, "/mexc", u.Path)

	for _, s := range []string{"http://[::1", "127.0.0.1:8080", "ftp://api.mexc.com", "https://", "%zz"} {
		_, err := ParseBaseURL(s)
		assert.Error(t, err, s)
	}
}

func TestRestClient_BaseURLPathPrefix(t *testing.T) {
	var saved *http.Request
	client := NewClientWithBaseURL("http://proxy.local/mexc/", httptesting.HttpClientSaver(&saved, `{}`))

	_, err := client.NewPingRequest().Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "proxy.local", saved.URL.Host)
	assert.Equal(t, "/mexc/api/v3/ping", saved.URL.Path)

	client = NewClientWithBaseURL(ProductionRestBaseURL, nil)
	req, err := client.NewRequest(context.Background(), "GET", "/api/v3/time", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.mexc.com/api/v3/time", req.URL.String())
}

func TestRestClient_RecvWindowOutOfRange(t *testing.T) {
	transport := &httptesting.MockTransport{}
	client := newMockClient(transport)

	for _, recvWindow := range []int64{-5, 0, MaxRecvWindow + 1} {
		_, err := client.NewGetAccountInformationRequest().RecvWindow(recvWindow).Do(context.Background())
		assert.Error(t, err, "recvWindow %d", recvWindow)
	}

	assert.Empty(t, transport.Requests)
}

func TestEndpoint(t *testing.T) {
	assert.Equal(t, ProductionRestBaseURL, EndpointProduction.URL())

	t.Setenv("MEXC_TEST_BASE_URL", "http://127.0.0.1:9999")
	assert.Equal(t, "http://127.0.0.1:9999", EndpointTest.URL())

	e, err := ParseEndpoint("sandbox")
	assert.NoError(t, err)
	assert.Equal(t, EndpointTest, e)

	e, err = ParseEndpoint("")
	assert.NoError(t, err)
	assert.Equal(t, EndpointProduction, e)

	_, err = ParseEndpoint("mainnet2")
	assert.Error(t, err)
}

// Every endpoint must report a truncated body as a deserialization error.
func TestEndpoints_TruncatedBody(t *testing.T) {
	const truncated = `{"makerCommission":"0.002","balances":[{"asset":"BTC","fr`

	quantity := decimal.RequireFromString("1")
	price := decimal.RequireFromString("0.00001")

	calls := map[string]func(c *RestClient) error{
		"ping": func(c *RestClient) error {
			_, err := c.NewPingRequest().Do(context.Background())
			return err
		},
		"time": func(c *RestClient) error {
			_, err := c.NewGetServerTimeRequest().Do(context.Background())
			return err
		},
		"account": func(c *RestClient) error {
			_, err := c.QueryAccountInformation(context.Background())
			return err
		},
		"order": func(c *RestClient) error {
			_, err := c.NewPlaceOrderRequest().
				Symbol("KASUSDT").Side(OrderSideBuy).OrderType(OrderTypeLimit).
				Quantity(quantity).Price(price).
				Do(context.Background())
			return err
		},
		"test order": func(c *RestClient) error {
			return c.TestOrder(context.Background(), OrderParams{
				Symbol: "KASUSDT", Side: OrderSideBuy, Type: OrderTypeLimit, Quantity: &quantity, Price: &price,
			})
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			client := NewClientWithBaseURL(ProductionRestBaseURL, httptesting.HttpClientWithContent(truncated))
			client.Auth(testKey, testSecret)

			err := call(client)
			var decodeErr *DecodeError
			if assert.ErrorAs(t, err, &decodeErr) {
				assert.Equal(t, truncated, string(decodeErr.Body))
			}
		})
	}
}

func TestClient_Integration(t *testing.T) {
	client := getTestClientOrSkip(t)
	ctx := context.Background()

	_, err := client.NewPingRequest().Do(ctx)
	assert.NoError(t, err)

	err = client.SetTimeOffsetFromServer(ctx)
	assert.NoError(t, err)

	info, err := client.NewGetAccountInformationRequest().RecvWindow(5000).Do(ctx)
	if assert.NoError(t, err) {
		assert.NotEmpty(t, info.AccountType)
		t.Logf("account: %+v", info)
	}
}
