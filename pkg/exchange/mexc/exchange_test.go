package mexc

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/mexcgo/pkg/exchange/mexc/mexcapi"
	"github.com/c9s/mexcgo/pkg/testing/httptesting"
	"github.com/c9s/mexcgo/pkg/testutil"
)

func getExchange(t *testing.T) *Exchange {
	testutil.SkipIfCI(t)

	key, secret, ok := testutil.IntegrationTestConfigured(t, "MEXC")
	if !ok {
		t.Skip("api key/secret not configured")
	}
	return New(key, secret)
}

func newMockExchange(t *testing.T, transport *httptesting.MockTransport, options Options) *Exchange {
	client := mexcapi.NewClientWithBaseURL(mexcapi.ProductionRestBaseURL, &http.Client{Transport: transport})
	ex, err := NewWithClient("mx0vkey", "secret", client, options)
	require.NoError(t, err)
	return ex
}

func TestNewWithOptions(t *testing.T) {
	_, err := NewWithOptions("key", "secret", Options{RateLimit: "foo"})
	assert.Error(t, err)

	_, err = NewWithOptions("key", "secret", Options{RecvWindow: 70000})
	assert.Error(t, err)

	ex, err := NewWithOptions("key", "secret", Options{BaseURL: "http://127.0.0.1:8080", RecvWindow: 5000})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", ex.Client().BaseURL.Host)
	assert.Equal(t, ID, ex.Name())
	assert.Equal(t, MX, ex.PlatformFeeCurrency())
}

func TestExchange_QueryAccountBalances(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/account", httptesting.ReplyString(http.StatusOK, `{
		"makerCommission": "0.002", "takerCommission": "0.002",
		"buyerCommission": "0", "sellerCommission": "0",
		"canTrade": true, "canWithdraw": true, "canDeposit": true,
		"updateTime": null, "accountType": "SPOT",
		"balances": [
			{"asset": "btc", "free": "0.1", "locked": "0"},
			{"asset": "ETH", "free": "0", "locked": "0"},
			{"asset": "USDT", "free": "0", "locked": "25.5"}
		],
		"permissions": ["SPOT"]
	}`))

	ex := newMockExchange(t, transport, Options{})
	balances, err := ex.QueryAccountBalances(context.Background())
	require.NoError(t, err)

	assert.Len(t, balances, 2)
	assert.Equal(t, "0.1", balances["BTC"].Free.String())
	assert.Equal(t, "25.5", balances["USDT"].Total().String())
	_, ok := balances["ETH"]
	assert.False(t, ok)
}

func TestExchange_PlaceOrder(t *testing.T) {
	var sent *http.Request
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/order", func(req *http.Request) (*http.Response, error) {
		sent = req
		return httptesting.BuildResponseJson(http.StatusOK, `{"symbol":"MXUSDT","orderId":"123","price":"1.5","origQty":"2","type":"LIMIT","side":"SELL","transactTime":1666676533741}`), nil
	})

	ex := newMockExchange(t, transport, Options{AutoClientOrderID: true})
	order, err := ex.SubmitLimitOrder(context.Background(), "mxusdt", mexcapi.OrderSideSell, decimal.NewFromInt(2), decimal.RequireFromString("1.5"))
	require.NoError(t, err)
	assert.Equal(t, "123", order.OrderID)

	require.NotNil(t, sent)
	query := sent.URL.Query()
	assert.Equal(t, "MXUSDT", query.Get("symbol"))
	assert.Len(t, query.Get("newClientOrderId"), 32)
	assert.NotEmpty(t, query.Get("signature"))
}

func TestExchange_PlaceOrder_KeepsClientOrderID(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/order", httptesting.ReplyString(http.StatusOK, `{"symbol":"MXUSDT","orderId":"1","price":"0","origQty":"5","type":"MARKET","side":"BUY","transactTime":1666676533741}`))

	ex := newMockExchange(t, transport, Options{AutoClientOrderID: true})
	_, err := ex.PlaceOrder(context.Background(), mexcapi.OrderParams{
		Symbol:           "MXUSDT",
		Side:             mexcapi.OrderSideBuy,
		Type:             mexcapi.OrderTypeMarket,
		Quantity:         decimalPtr("5"),
		NewClientOrderID: "mine",
	})
	require.NoError(t, err)
	assert.Equal(t, "mine", transport.LastRequest().URL.Query().Get("newClientOrderId"))
}

func TestExchange_PlaceOrder_APIError(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/order", httptesting.ReplyString(http.StatusBadRequest, `{"code":-2010,"msg":"Insufficient balance"}`))

	ex := newMockExchange(t, transport, Options{})
	_, err := ex.SubmitLimitOrder(context.Background(), "MXUSDT", mexcapi.OrderSideBuy, decimal.NewFromInt(1), decimal.NewFromInt(1))
	assert.True(t, mexcapi.IsAPIError(err, mexcapi.ErrCodeInsufficientBalance))
}

func TestExchange_TestOrder(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/order/test", httptesting.ReplyString(http.StatusOK, `{}`))

	ex := newMockExchange(t, transport, Options{})
	err := ex.TestOrder(context.Background(), mexcapi.OrderParams{
		Symbol:             "MXUSDT",
		Side:               mexcapi.OrderSideBuy,
		Type:               mexcapi.OrderTypeMarket,
		QuoteOrderQuantity: decimalPtr("10"),
	})
	assert.NoError(t, err)
}

func TestExchange_RateLimitHonorsContext(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/ping", httptesting.ReplyString(http.StatusOK, `{}`))

	ex := newMockExchange(t, transport, Options{RateLimit: "1/1h"})
	assert.True(t, ex.Ping(context.Background()))

	// the only token is spent, the next call must give up with the context
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.False(t, ex.Ping(ctx))
	assert.Len(t, transport.Requests, 1)
}

func TestExchange_ServerTime(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/time", httptesting.ReplyJson(http.StatusOK, map[string]int64{"serverTime": 1666676533741}))

	ex := newMockExchange(t, transport, Options{})
	serverTime, err := ex.ServerTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1666676533741), serverTime.UnixMilli())
}

func TestExchange_PingFailure(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/ping", httptesting.ReplyError(errors.New("connection refused")))

	ex := newMockExchange(t, transport, Options{})
	assert.False(t, ex.Ping(context.Background()))
}

func TestExchange_RecvWindowFromEnv(t *testing.T) {
	t.Setenv("MEXC_RECV_WINDOW", "7000")

	transport := &httptesting.MockTransport{}
	transport.GET("/api/v3/account", httptesting.ReplyString(http.StatusOK, `{"accountType":"SPOT","balances":[]}`))

	ex := newMockExchange(t, transport, Options{})
	_, err := ex.QueryAccountInformation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7000", transport.LastRequest().URL.Query().Get("recvWindow"))

	// an explicit option wins over the env var
	ex = newMockExchange(t, transport, Options{RecvWindow: 3000})
	_, err = ex.QueryAccountInformation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3000", transport.LastRequest().URL.Query().Get("recvWindow"))
}

func TestNew_InvalidRecvWindowFromEnv(t *testing.T) {
	for _, v := range []string{"70000", "-5", "abc"} {
		t.Setenv("MEXC_RECV_WINDOW", v)

		var ex *Exchange
		assert.NotPanics(t, func() {
			ex = New("key", "secret")
		}, "MEXC_RECV_WINDOW=%s", v)

		require.NotNil(t, ex)
		req, err := ex.Client().NewAuthenticatedRequest(context.Background(), "GET", "/api/v3/account", nil, nil)
		require.NoError(t, err)
		assert.False(t, req.URL.Query().Has("recvWindow"), "MEXC_RECV_WINDOW=%s", v)
	}
}

func TestNewWithOptions_InvalidBaseURL(t *testing.T) {
	for _, baseURL := range []string{"http://[::1", "127.0.0.1:8080", "https://"} {
		assert.NotPanics(t, func() {
			_, err := NewWithOptions("key", "secret", Options{BaseURL: baseURL})
			assert.Error(t, err, baseURL)
		})
	}

	t.Setenv("MEXC_TEST_BASE_URL", "localhost:8080")
	assert.NotPanics(t, func() {
		_, err := NewWithOptions("key", "secret", Options{Endpoint: mexcapi.EndpointTest})
		assert.Error(t, err)
	})
}

func TestNewWithOptions_BaseURLPathPrefix(t *testing.T) {
	ex, err := NewWithOptions("key", "secret", Options{BaseURL: "http://127.0.0.1:8080/mexc"})
	require.NoError(t, err)

	req, err := ex.Client().NewRequest(context.Background(), "GET", "/api/v3/ping", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/mexc/api/v3/ping", req.URL.String())
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func Test_Ping(t *testing.T) {
	ex := getExchange(t)
	assert.True(t, ex.Ping(context.Background()))
}

func Test_Time(t *testing.T) {
	ex := getExchange(t)
	serverTime, err := ex.ServerTime(context.Background())
	assert.NoError(t, err)
	assert.InDelta(t, serverTime.UnixMilli(), time.Now().UnixMilli(), 60000)
}

func Test_QueryAccount(t *testing.T) {
	ex := getExchange(t)
	assert.NoError(t, ex.SyncServerTime(context.Background()))

	account, err := ex.QueryAccountInformation(context.Background())
	if assert.NoError(t, err) {
		assert.True(t, account.TakerCommission.GreaterThanOrEqual(decimal.Zero))
	}
}
