package mexc

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/c9s/mexcgo/pkg/envvar"
	"github.com/c9s/mexcgo/pkg/exchange/mexc/mexcapi"
	"github.com/c9s/mexcgo/pkg/util"
)

const (
	ID = "mexc"

	MX = "MX"

	// DefaultRateLimit follows the 20 requests per second limit of the spot api
	DefaultRateLimit = "20/1s"
)

var log = logrus.WithField("exchange", ID)

type Options struct {
	Endpoint mexcapi.Endpoint

	// BaseURL overrides the endpoint url when set
	BaseURL string

	// RecvWindow in milliseconds, 0 falls back to MEXC_RECV_WINDOW and then the exchange default
	RecvWindow int64

	// RateLimit uses the util.ParseRateLimitSyntax syntax, empty means DefaultRateLimit
	RateLimit string

	// AutoClientOrderID generates a client order id for orders that have none
	AutoClientOrderID bool
}

type Exchange struct {
	client  *mexcapi.RestClient
	limiter *rate.Limiter

	autoClientOrderID bool
}

var _ mexcapi.AccountService = &Exchange{}
var _ mexcapi.OrderService = &Exchange{}

// New uses the production endpoint and the default options, an invalid
// MEXC_RECV_WINDOW is ignored so New never fails.
func New(key, secret string) *Exchange {
	ex, err := NewWithOptions(key, secret, Options{})
	if err != nil {
		panic(err)
	}

	return ex
}

func NewWithOptions(key, secret string, options Options) (*Exchange, error) {
	baseURL := options.BaseURL
	if len(baseURL) == 0 {
		baseURL = options.Endpoint.URL()
	}

	if _, err := mexcapi.ParseBaseURL(baseURL); err != nil {
		return nil, err
	}

	var client *mexcapi.RestClient
	if len(options.BaseURL) > 0 {
		client = mexcapi.NewClientWithBaseURL(options.BaseURL, nil)
	} else {
		client = mexcapi.NewClient(options.Endpoint)
	}

	return newExchange(key, secret, client, options)
}

// NewWithClient builds an exchange around an existing rest client, the client
// is authenticated with key and secret.
func NewWithClient(key, secret string, client *mexcapi.RestClient, options Options) (*Exchange, error) {
	return newExchange(key, secret, client, options)
}

func newExchange(key, secret string, client *mexcapi.RestClient, options Options) (*Exchange, error) {
	if len(key) > 0 && len(secret) > 0 {
		client.Auth(key, secret)
	}

	if options.RecvWindow != 0 {
		if err := client.SetRecvWindow(options.RecvWindow); err != nil {
			return nil, err
		}
	} else if recvWindow, ok := envvar.Int64("MEXC_RECV_WINDOW"); ok {
		if err := client.SetRecvWindow(recvWindow); err != nil {
			log.WithError(err).Warnf("ignoring MEXC_RECV_WINDOW=%d", recvWindow)
		}
	}

	rateLimit := options.RateLimit
	if len(rateLimit) == 0 {
		rateLimit = DefaultRateLimit
	}

	limiter, err := util.ParseRateLimitSyntax(rateLimit)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rate limit %q", rateLimit)
	}

	return &Exchange{
		client:            client,
		limiter:           limiter,
		autoClientOrderID: options.AutoClientOrderID,
	}, nil
}

func (e *Exchange) Name() string {
	return ID
}

func (e *Exchange) PlatformFeeCurrency() string {
	return MX
}

func (e *Exchange) Client() *mexcapi.RestClient {
	return e.client
}

func (e *Exchange) wait(ctx context.Context, op string) error {
	if err := e.limiter.Wait(ctx); err != nil {
		return errors.Wrapf(err, "%s rate limiter wait error", op)
	}

	return nil
}

func (e *Exchange) Ping(ctx context.Context) bool {
	if err := e.wait(ctx, "ping"); err != nil {
		log.WithError(err).Errorf("ping error")
		return false
	}

	if _, err := e.client.NewPingRequest().Do(ctx); err != nil {
		log.WithError(err).Errorf("ping error")
		return false
	}

	return true
}

func (e *Exchange) ServerTime(ctx context.Context) (time.Time, error) {
	if err := e.wait(ctx, "server time"); err != nil {
		return time.Time{}, err
	}

	t, err := e.client.NewGetServerTimeRequest().Do(ctx)
	if err != nil {
		log.WithError(err).Errorf("server time error")
		return time.Time{}, err
	}

	return t.Time(), nil
}

// SyncServerTime aligns signed request timestamps with the server clock.
func (e *Exchange) SyncServerTime(ctx context.Context) error {
	if err := e.wait(ctx, "server time"); err != nil {
		return err
	}

	if err := e.client.SetTimeOffsetFromServer(ctx); err != nil {
		return errors.Wrap(err, "unable to sync mexc server time")
	}

	log.Infof("mexc server time offset: %s", e.client.TimeOffset())
	return nil
}

func (e *Exchange) QueryAccountInformation(ctx context.Context) (*mexcapi.AccountInformation, error) {
	if err := e.wait(ctx, "account"); err != nil {
		return nil, err
	}

	info, err := e.client.NewGetAccountInformationRequest().Do(ctx)
	if err != nil {
		log.WithError(err).Errorf("query account information error")
		return nil, err
	}

	return info, nil
}

// QueryAccountBalances returns the non-zero balances indexed by asset.
func (e *Exchange) QueryAccountBalances(ctx context.Context) (map[string]mexcapi.Balance, error) {
	info, err := e.QueryAccountInformation(ctx)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]mexcapi.Balance, len(info.Balances))
	for _, b := range info.Balances {
		if b.Total().IsZero() {
			continue
		}

		balances[strings.ToUpper(b.Asset)] = b
	}

	return balances, nil
}

func (e *Exchange) PlaceOrder(ctx context.Context, params mexcapi.OrderParams) (*mexcapi.OrderResponse, error) {
	params = e.prepareOrderParams(params)
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if err := e.wait(ctx, "order"); err != nil {
		return nil, err
	}

	order, err := e.client.NewPlaceOrderRequestWithParams(params).Do(ctx)
	if err != nil {
		log.WithError(err).Errorf("place order error: %s %s %s", params.Symbol, params.Side, params.Type)
		return nil, err
	}

	log.Infof("order placed: %s %s %s %s price=%s qty=%s", order.OrderID, order.Symbol, order.Side, order.Type, order.Price, order.OrigQty)
	return order, nil
}

func (e *Exchange) TestOrder(ctx context.Context, params mexcapi.OrderParams) error {
	params = e.prepareOrderParams(params)
	if err := params.Validate(); err != nil {
		return err
	}

	if err := e.wait(ctx, "test order"); err != nil {
		return err
	}

	if _, err := e.client.NewPlaceOrderRequestWithParams(params).Test(true).Do(ctx); err != nil {
		log.WithError(err).Errorf("test order error: %s %s %s", params.Symbol, params.Side, params.Type)
		return err
	}

	return nil
}

// SubmitLimitOrder is a shortcut of PlaceOrder for limit orders.
func (e *Exchange) SubmitLimitOrder(
	ctx context.Context, symbol string, side mexcapi.OrderSide, quantity, price decimal.Decimal,
) (*mexcapi.OrderResponse, error) {
	return e.PlaceOrder(ctx, mexcapi.OrderParams{
		Symbol:   symbol,
		Side:     side,
		Type:     mexcapi.OrderTypeLimit,
		Quantity: &quantity,
		Price:    &price,
	})
}

func (e *Exchange) prepareOrderParams(params mexcapi.OrderParams) mexcapi.OrderParams {
	params.Symbol = strings.ToUpper(params.Symbol)
	if e.autoClientOrderID && len(params.NewClientOrderID) == 0 {
		params.NewClientOrderID = newClientOrderID()
	}

	return params
}

// newClientOrderID returns a 32 char hex id, MEXC accepts at most 32 chars.
func newClientOrderID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
