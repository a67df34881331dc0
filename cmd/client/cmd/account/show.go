package account

import (
	"errors"

	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/access"
)

var errNotAccountHolder = errors.New("команда доступна только владельцу счета")

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать дашборд",
	Long: `Счет, получатели и десять последних операций.

Администратор вместо этого увидит сводку по банку.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := view.App(cmd)
		if err != nil {
			return err
		}
		v, err := view.Enter(app, access.UserDashboard)
		if err != nil {
			return err
		}
		return render(cmd.Context(), app, v)
	},
}
