package admin

import (
	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/access"
)

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Сводка по банку",
	Long: `Все счета, общая сумма денег и сумма переводов за сегодня.

Обычный пользователь вместо этого увидит свой дашборд.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := view.App(cmd)
		if err != nil {
			return err
		}
		v, err := view.Enter(app, access.AdminDashboard)
		if err != nil {
			return err
		}

		if v == access.UserDashboard {
			snap, err := app.Accounts().LoadSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			if view.JSONOutput {
				return view.PrintJSON(snap)
			}
			view.UserDashboard(snap)
			return nil
		}

		snap, err := app.Admin().LoadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		if view.JSONOutput {
			return view.PrintJSON(snap)
		}
		view.AdminDashboard(snap)
		return nil
	},
}
