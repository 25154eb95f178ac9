package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/c9s/mexcgo/pkg/cmd/cmdutil"
	"github.com/c9s/mexcgo/pkg/exchange/mexc/mexcapi"
	"github.com/c9s/mexcgo/pkg/style"
)

func init() {
	orderFlags(orderCmd.Flags())
	RootCmd.AddCommand(orderCmd)
}

func orderFlags(flags *pflag.FlagSet) {
	flags.String("symbol", "", "the trading pair, like MXUSDT")
	flags.String("side", "", "BUY or SELL")
	flags.String("type", string(mexcapi.OrderTypeLimit), "LIMIT, MARKET, LIMIT_MAKER, IMMEDIATE_OR_CANCEL or FILL_OR_KILL")
	flags.String("quantity", "", "order quantity in the base asset")
	flags.String("quote-quantity", "", "order amount in the quote asset, market orders only")
	flags.String("price", "", "order price, required by all types except MARKET")
	flags.String("client-order-id", "", "client order id, generated when empty")
	flags.Bool("test", false, "validate the order with the test endpoint without placing it")
}

// go run ./cmd/mexc order --symbol MXUSDT --side BUY --type LIMIT --quantity 10 --price 1.2 --test
var orderCmd = &cobra.Command{
	Use:          "order --symbol SYMBOL --side SIDE [--type TYPE] [--quantity QTY|--quote-quantity AMOUNT] [--price PRICE] [--test]",
	Short:        "place a spot order",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		params, err := orderParamsFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		if err := params.Validate(); err != nil {
			return err
		}

		test, err := cmd.Flags().GetBool("test")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewExchangeFromViper(viper.GetViper())
		if err != nil {
			return err
		}

		if err := ex.SyncServerTime(ctx); err != nil {
			return err
		}

		order, err := submitOrder(ctx, ex, params, test)
		if err != nil || order == nil {
			return err
		}

		printOrder(cmd.OutOrStdout(), order)
		return nil
	},
}

// submitOrder returns a nil order for test orders.
func submitOrder(ctx context.Context, service mexcapi.OrderService, params mexcapi.OrderParams, test bool) (*mexcapi.OrderResponse, error) {
	if test {
		if err := service.TestOrder(ctx, params); err != nil {
			return nil, err
		}

		log.Infof("test order accepted: %s %s %s", params.Symbol, params.Side, params.Type)
		return nil, nil
	}

	return service.PlaceOrder(ctx, params)
}

func orderParamsFromFlags(flags *pflag.FlagSet) (mexcapi.OrderParams, error) {
	var params mexcapi.OrderParams

	symbol, err := flags.GetString("symbol")
	if err != nil {
		return params, err
	}

	if len(symbol) == 0 {
		return params, fmt.Errorf("--symbol is required")
	}
	params.Symbol = symbol

	sideStr, err := flags.GetString("side")
	if err != nil {
		return params, err
	}

	if params.Side, err = mexcapi.ParseOrderSide(sideStr); err != nil {
		return params, err
	}

	typeStr, err := flags.GetString("type")
	if err != nil {
		return params, err
	}

	if params.Type, err = mexcapi.ParseOrderType(typeStr); err != nil {
		return params, err
	}

	if params.Quantity, err = decimalFlag(flags, "quantity"); err != nil {
		return params, err
	}

	if params.QuoteOrderQuantity, err = decimalFlag(flags, "quote-quantity"); err != nil {
		return params, err
	}

	if params.Price, err = decimalFlag(flags, "price"); err != nil {
		return params, err
	}

	if params.NewClientOrderID, err = flags.GetString("client-order-id"); err != nil {
		return params, err
	}

	return params, nil
}

// decimalFlag returns nil when the flag is empty.
func decimalFlag(flags *pflag.FlagSet, name string) (*decimal.Decimal, error) {
	s, err := flags.GetString(name)
	if err != nil {
		return nil, err
	}

	if len(s) == 0 {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}

	return &d, nil
}

func printOrder(w io.Writer, order *mexcapi.OrderResponse) {
	t := style.NewTableWriter(w, "Order", "Order ID", "Symbol", "Side", "Type", "Price", "Quantity", "Time")
	t.AppendRow([]interface{}{
		order.OrderID,
		order.Symbol,
		style.SideColor(string(order.Side)),
		order.Type,
		order.Price.String(),
		order.OrigQty.String(),
		order.TransactTime.String(),
	})
	t.Render()
}
