package mexcapi

//go:generate -command GetRequest requestgen -method GET

import (
	"strings"

	"github.com/c9s/requestgen"
	"github.com/shopspring/decimal"
)

type Balance struct {
	Asset  string          `json:"asset"`
	Free   decimal.Decimal `json:"free"`
	Locked decimal.Decimal `json:"locked"`
}

func (b Balance) Total() decimal.Decimal {
	return b.Free.Add(b.Locked)
}

/*
sample:

	{
	    "makerCommission": "0.002",
	    "takerCommission": "0.002",
	    "buyerCommission": "0",
	    "sellerCommission": "0",
	    "canTrade": true,
	    "canWithdraw": true,
	    "canDeposit": true,
	    "updateTime": null,
	    "accountType": "SPOT",
	    "balances": [
	        {"asset": "MX", "free": "3", "locked": "0"}
	    ],
	    "permissions": ["SPOT"]
	}
*/
type AccountInformation struct {
	MakerCommission  decimal.Decimal `json:"makerCommission"`
	TakerCommission  decimal.Decimal `json:"takerCommission"`
	BuyerCommission  decimal.Decimal `json:"buyerCommission"`
	SellerCommission decimal.Decimal `json:"sellerCommission"`
	CanTrade         bool            `json:"canTrade"`
	CanWithdraw      bool            `json:"canWithdraw"`
	CanDeposit       bool            `json:"canDeposit"`
	UpdateTime       *Timestamp      `json:"updateTime"`
	AccountType      AccountType     `json:"accountType"`
	Balances         []Balance       `json:"balances"`
	Permissions      []string        `json:"permissions"`
}

// BalanceOf looks up the balance of the given asset, the lookup is case-insensitive.
func (a *AccountInformation) BalanceOf(asset string) (Balance, bool) {
	for _, b := range a.Balances {
		if strings.EqualFold(b.Asset, asset) {
			return b, true
		}
	}

	return Balance{}, false
}

func (a *AccountInformation) HasPermission(permission string) bool {
	for _, p := range a.Permissions {
		if strings.EqualFold(p, permission) {
			return true
		}
	}

	return false
}

func (a *AccountInformation) Unmarshal(data []byte) error {
	return unmarshalPayload(data, a)
}

//go:generate GetRequest -url "/api/v3/account" -type GetAccountInformationRequest -responseType .AccountInformation
type GetAccountInformationRequest struct {
	client requestgen.AuthenticatedAPIClient

	recvWindow *int64 `param:"recvWindow"`
}

func (c *RestClient) NewGetAccountInformationRequest() *GetAccountInformationRequest {
	return &GetAccountInformationRequest{client: c}
}
