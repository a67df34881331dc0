package admin

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
)

var AccountCmd = &cobra.Command{
	Use:   "account <id>",
	Short: "Показать счет по идентификатору",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("неверный идентификатор счета %q", args[0])
		}

		app, err := enterAdmin(cmd)
		if err != nil {
			return err
		}

		acc, err := app.Admin().Account(cmd.Context(), id)
		if err != nil {
			return err
		}

		if view.JSONOutput {
			return view.PrintJSON(acc)
		}
		view.Header(fmt.Sprintf("Счет #%d", acc.ID))
		view.Account(acc)
		return nil
	},
}
