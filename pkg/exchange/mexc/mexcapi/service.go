package mexcapi

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . AccountService,OrderService

// AccountService is the account endpoint group.
type AccountService interface {
	QueryAccountInformation(ctx context.Context) (*AccountInformation, error)
}

// OrderService is the order endpoint group.
type OrderService interface {
	PlaceOrder(ctx context.Context, params OrderParams) (*OrderResponse, error)
	TestOrder(ctx context.Context, params OrderParams) error
}

var _ AccountService = &RestClient{}
var _ OrderService = &RestClient{}

func (c *RestClient) QueryAccountInformation(ctx context.Context) (*AccountInformation, error) {
	return c.NewGetAccountInformationRequest().Do(ctx)
}

func (c *RestClient) PlaceOrder(ctx context.Context, params OrderParams) (*OrderResponse, error) {
	return c.NewPlaceOrderRequestWithParams(params).Do(ctx)
}

func (c *RestClient) TestOrder(ctx context.Context, params OrderParams) error {
	_, err := c.NewPlaceOrderRequestWithParams(params).Test(true).Do(ctx)
	return err
}
