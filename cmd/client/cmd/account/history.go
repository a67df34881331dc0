package account

import (
	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/account"
)

var historyPeriod string

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "История операций",
	RunE: func(cmd *cobra.Command, _ []string) error {
		period, err := account.ParsePeriod(historyPeriod)
		if err != nil {
			return err
		}

		app, err := enterDashboard(cmd)
		if err != nil {
			return err
		}

		txs, err := app.Accounts().History(cmd.Context(), period)
		if err != nil {
			return err
		}

		if view.JSONOutput {
			return view.PrintJSON(txs)
		}
		view.Transactions(txs)
		return nil
	},
}

func init() {
	HistoryCmd.Flags().StringVarP(&historyPeriod, "period", "p", "all", "период (all, daily, weekly)")
}
