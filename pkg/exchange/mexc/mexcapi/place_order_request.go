package mexcapi

//go:generate -command GetRequest requestgen -method GET

import (
	"fmt"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderParams is the typed input of an order placement.
// Exactly one of Quantity and QuoteOrderQuantity must be set.
type OrderParams struct {
	Symbol string
	Side   OrderSide
	Type   OrderType

	// Quantity is the base asset amount
	Quantity *decimal.Decimal

	// QuoteOrderQuantity is the quote asset amount, market orders only
	QuoteOrderQuantity *decimal.Decimal

	Price *decimal.Decimal

	NewClientOrderID string

	RecvWindow *int64
}

func (p OrderParams) Validate() error {
	if len(p.Symbol) == 0 {
		return errors.New("order symbol is required")
	}

	if p.Side != OrderSideBuy && p.Side != OrderSideSell {
		return fmt.Errorf("invalid order side: %q", p.Side)
	}

	if _, err := ParseOrderType(string(p.Type)); err != nil {
		return err
	}

	if p.Quantity == nil && p.QuoteOrderQuantity == nil {
		return errors.New("either quantity or quoteOrderQty is required")
	}

	if p.Quantity != nil && p.QuoteOrderQuantity != nil {
		return errors.New("quantity and quoteOrderQty are mutually exclusive")
	}

	if p.Quantity != nil && !p.Quantity.IsPositive() {
		return fmt.Errorf("quantity must be positive, got %s", p.Quantity)
	}

	if p.QuoteOrderQuantity != nil && !p.QuoteOrderQuantity.IsPositive() {
		return fmt.Errorf("quoteOrderQty must be positive, got %s", p.QuoteOrderQuantity)
	}

	if p.Type.RequiresPrice() {
		if p.Price == nil {
			return fmt.Errorf("price is required for %s orders", p.Type)
		}

		if p.Quantity == nil {
			return fmt.Errorf("quantity is required for %s orders", p.Type)
		}
	}

	if p.Price != nil && !p.Price.IsPositive() {
		return fmt.Errorf("price must be positive, got %s", p.Price)
	}

	if p.RecvWindow != nil {
		if err := validateRecvWindow(*p.RecvWindow); err != nil {
			return err
		}
	}

	return nil
}

/*
sample:

	{
	    "symbol": "MXUSDT",
	    "orderId": "06a480e69e604477bfb48dddd5f0b750",
	    "orderListId": -1,
	    "price": "0.1",
	    "origQty": "50",
	    "type": "LIMIT",
	    "side": "BUY",
	    "transactTime": 1666676533741
	}
*/
type OrderResponse struct {
	Symbol       string          `json:"symbol"`
	OrderID      string          `json:"orderId"`
	OrderListID  *int            `json:"orderListId,omitempty"`
	Price        decimal.Decimal `json:"price"`
	OrigQty      decimal.Decimal `json:"origQty"`
	Type         OrderType       `json:"type"`
	Side         OrderSide       `json:"side"`
	TransactTime Timestamp       `json:"transactTime"`
}

func (o *OrderResponse) Unmarshal(data []byte) error {
	return unmarshalPayload(data, o)
}

// PlaceOrderRequest sends a signed order. With Test(true) the order goes to
// /api/v3/order/test, it is validated by the exchange but never placed.
//
//go:generate GetRequest -dynamicPath -type PlaceOrderRequest -responseType .OrderResponse
type PlaceOrderRequest struct {
	client requestgen.AuthenticatedAPIClient

	symbol             string           `param:"symbol,required"`
	side               OrderSide        `param:"side,required"`
	orderType          OrderType        `param:"type,required"`
	quantity           *decimal.Decimal `param:"quantity"`
	quoteOrderQuantity *decimal.Decimal `param:"quoteOrderQty"`
	price              *decimal.Decimal `param:"price"`
	newClientOrderID   *string          `param:"newClientOrderId"`
	recvWindow         *int64           `param:"recvWindow"`

	test bool
}

func (c *RestClient) NewPlaceOrderRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{client: c}
}

func (c *RestClient) NewPlaceOrderRequestWithParams(params OrderParams) *PlaceOrderRequest {
	r := &PlaceOrderRequest{
		client:             c,
		symbol:             params.Symbol,
		side:               params.Side,
		orderType:          params.Type,
		quantity:           params.Quantity,
		quoteOrderQuantity: params.QuoteOrderQuantity,
		price:              params.Price,
		recvWindow:         params.RecvWindow,
	}

	if len(params.NewClientOrderID) > 0 {
		r.NewClientOrderID(params.NewClientOrderID)
	}

	return r
}

func (r *PlaceOrderRequest) Test(test bool) *PlaceOrderRequest {
	r.test = test
	return r
}

// Params returns the order carried by the request.
func (r *PlaceOrderRequest) Params() OrderParams {
	params := OrderParams{
		Symbol:             r.symbol,
		Side:               r.side,
		Type:               r.orderType,
		Quantity:           r.quantity,
		QuoteOrderQuantity: r.quoteOrderQuantity,
		Price:              r.price,
		RecvWindow:         r.recvWindow,
	}

	if r.newClientOrderID != nil {
		params.NewClientOrderID = *r.newClientOrderID
	}

	return params
}

// GetDynamicPath is the last hook before the request is signed, the whole
// order is validated here so that an invalid order never reaches the wire.
func (r *PlaceOrderRequest) GetDynamicPath() (string, error) {
	if err := r.Params().Validate(); err != nil {
		return "", err
	}

	if r.test {
		return "/api/v3/order/test", nil
	}

	return "/api/v3/order", nil
}
