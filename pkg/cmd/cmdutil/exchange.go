package cmdutil

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/c9s/mexcgo/pkg/exchange/mexc"
	"github.com/c9s/mexcgo/pkg/exchange/mexc/mexcapi"
)

// NewExchangeFromViper builds the exchange from the flags and env vars bound in viper.
func NewExchangeFromViper(v *viper.Viper) (*mexc.Exchange, error) {
	endpoint, err := mexcapi.ParseEndpoint(v.GetString("endpoint"))
	if err != nil {
		return nil, err
	}

	options := mexc.Options{
		Endpoint:          endpoint,
		BaseURL:           v.GetString("base-url"),
		RecvWindow:        v.GetInt64("recv-window"),
		RateLimit:         v.GetString("rate-limit"),
		AutoClientOrderID: true,
	}

	ex, err := mexc.NewWithOptions(v.GetString("api-key"), v.GetString("api-secret"), options)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create mexc exchange")
	}

	return ex, nil
}
