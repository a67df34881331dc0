package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/account"
)

var (
	toIBAN    string
	toAddress string
	amount    string
)

var TransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Перевести деньги",
	Long: `Перевод по IBAN или по крипто-адресу получателя.

banker account transfer --to-iban AB000000000002 --amount 50`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := enterDashboard(cmd)
		if err != nil {
			return err
		}

		in := account.TransferInput{
			ToIBAN:    toIBAN,
			ToAddress: toAddress,
			Amount:    view.OrPrompt(amount, "Сумма"),
		}
		if in.ToIBAN == "" && in.ToAddress == "" {
			in.ToIBAN = view.Prompt("IBAN получателя (пусто, чтобы указать адрес)")
			if in.ToIBAN == "" {
				in.ToAddress = view.Prompt("Крипто-адрес получателя")
			}
		}

		fmt.Println("Перевод...")
		out, err := app.Accounts().Transfer(cmd.Context(), in)
		if err != nil {
			return err
		}
		return view.UserOutcome(out)
	},
}

func init() {
	TransferCmd.Flags().StringVar(&toIBAN, "to-iban", "", "IBAN получателя")
	TransferCmd.Flags().StringVar(&toAddress, "to-address", "", "крипто-адрес получателя")
	TransferCmd.Flags().StringVarP(&amount, "amount", "a", "", "сумма перевода")
}
