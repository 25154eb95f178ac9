package cmdutil

import (
	"github.com/spf13/pflag"

	"github.com/c9s/mexcgo/pkg/exchange/mexc"
)

// PersistentFlags defines the flags for the exchange connection
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("api-key", "", "mexc api key")
	flags.String("api-secret", "", "mexc api secret")
	flags.String("endpoint", "production", "mexc endpoint, production or test")
	flags.String("base-url", "", "override the endpoint base url")
	flags.Int64("recv-window", 0, "signed request recvWindow in milliseconds, at most 60000")
	flags.String("rate-limit", mexc.DefaultRateLimit, "client side rate limit, like 20/1s or 5+3/1m")
}
