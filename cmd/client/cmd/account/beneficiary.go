package account

import (
	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/account"
)

var (
	beneficiaryName    string
	beneficiaryIBAN    string
	beneficiaryAddress string
)

var BeneficiaryCmd = &cobra.Command{
	Use:   "beneficiary",
	Short: "Получатели переводов",
}

var BeneficiaryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить получателя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := enterDashboard(cmd)
		if err != nil {
			return err
		}

		out, err := app.Accounts().AddBeneficiary(cmd.Context(), account.BeneficiaryInput{
			Name:    view.OrPrompt(beneficiaryName, "Имя"),
			IBAN:    view.OrPrompt(beneficiaryIBAN, "IBAN"),
			Address: view.OrPrompt(beneficiaryAddress, "Крипто-адрес"),
		})
		if err != nil {
			return err
		}
		return view.UserOutcome(out)
	},
}

func init() {
	BeneficiaryAddCmd.Flags().StringVarP(&beneficiaryName, "name", "n", "", "имя получателя")
	BeneficiaryAddCmd.Flags().StringVar(&beneficiaryIBAN, "iban", "", "IBAN получателя")
	BeneficiaryAddCmd.Flags().StringVar(&beneficiaryAddress, "address", "", "крипто-адрес получателя")
}
