package cmd

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/mexcgo/pkg/cmd/cmdutil"
	"github.com/c9s/mexcgo/pkg/exchange/mexc/mexcapi"
	"github.com/c9s/mexcgo/pkg/style"
)

func init() {
	accountCmd.Flags().Bool("all", false, "include zero balances")
	accountCmd.Flags().Bool("sync-time", true, "sync the server time before the signed request")
	RootCmd.AddCommand(accountCmd)
}

// go run ./cmd/mexc account --all
var accountCmd = &cobra.Command{
	Use:          "account [--all]",
	Short:        "show account information and balances",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		showAll, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		syncTime, err := cmd.Flags().GetBool("sync-time")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewExchangeFromViper(viper.GetViper())
		if err != nil {
			return err
		}

		if syncTime {
			if err := ex.SyncServerTime(ctx); err != nil {
				return err
			}
		}

		return showAccount(ctx, cmd.OutOrStdout(), ex, showAll)
	},
}

func showAccount(ctx context.Context, w io.Writer, service mexcapi.AccountService, showAll bool) error {
	account, err := service.QueryAccountInformation(ctx)
	if err != nil {
		return err
	}

	printAccount(w, account, showAll)
	return nil
}

func printAccount(w io.Writer, account *mexcapi.AccountInformation, showAll bool) {
	t := style.NewTableWriter(w, "Account", "Field", "Value")
	t.AppendRow([]interface{}{"Account Type", account.AccountType})
	t.AppendRow([]interface{}{"Maker Commission", account.MakerCommission.String()})
	t.AppendRow([]interface{}{"Taker Commission", account.TakerCommission.String()})
	t.AppendRow([]interface{}{"Can Trade", account.CanTrade})
	t.AppendRow([]interface{}{"Can Withdraw", account.CanWithdraw})
	t.AppendRow([]interface{}{"Can Deposit", account.CanDeposit})
	t.AppendRow([]interface{}{"Permissions", strings.Join(account.Permissions, ",")})
	if account.UpdateTime != nil {
		t.AppendRow([]interface{}{"Update Time", account.UpdateTime.String()})
	}
	t.Render()

	balances := make([]mexcapi.Balance, 0, len(account.Balances))
	for _, b := range account.Balances {
		if !showAll && b.Total().IsZero() {
			continue
		}
		balances = append(balances, b)
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Asset < balances[j].Asset
	})

	bt := style.NewTableWriter(w, "Balances", "Asset", "Free", "Locked", "Total")
	for _, b := range balances {
		bt.AppendRow([]interface{}{b.Asset, b.Free.String(), b.Locked.String(), b.Total().String()})
	}
	bt.Render()
}
