package admin

import (
	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/admin"
)

var (
	creditIBAN   string
	creditAmount string
)

var AddMoneyCmd = &cobra.Command{
	Use:   "add-money",
	Short: "Пополнить счет",
	Long: `Зачисляет сумму на счет по IBAN. Сумма положительная,
не более двух знаков после запятой.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := enterAdmin(cmd)
		if err != nil {
			return err
		}

		out, err := app.Admin().AddMoney(cmd.Context(), admin.AddMoneyInput{
			IBAN:   view.OrPrompt(creditIBAN, "IBAN"),
			Amount: view.OrPrompt(creditAmount, "Сумма"),
		})
		if err != nil {
			return err
		}
		return view.AdminOutcome(out)
	},
}

func init() {
	AddMoneyCmd.Flags().StringVar(&creditIBAN, "iban", "", "IBAN счета")
	AddMoneyCmd.Flags().StringVarP(&creditAmount, "amount", "a", "", "сумма пополнения")
}
