package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/mexcgo/pkg/cmd/cmdutil"
)

func init() {
	RootCmd.AddCommand(pingCmd)
	RootCmd.AddCommand(timeCmd)
}

// go run ./cmd/mexc ping
var pingCmd = &cobra.Command{
	Use:          "ping",
	Short:        "test the connectivity to the rest api",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := cmdutil.NewExchangeFromViper(viper.GetViper())
		if err != nil {
			return err
		}

		if !ex.Ping(context.Background()) {
			return errors.New("mexc ping failed")
		}

		fmt.Fprintln(cmd.OutOrStdout(), "pong")
		return nil
	},
}

// go run ./cmd/mexc time
var timeCmd = &cobra.Command{
	Use:          "time",
	Short:        "show the server time and the local clock offset",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ex, err := cmdutil.NewExchangeFromViper(viper.GetViper())
		if err != nil {
			return err
		}

		if err := ex.SyncServerTime(ctx); err != nil {
			return err
		}

		serverTime, err := ex.ServerTime(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "server time: %s (offset %s)\n", serverTime.Format("2006-01-02T15:04:05.000Z07:00"), ex.Client().TimeOffset())
		return nil
	},
}
