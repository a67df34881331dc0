package auth

import (
	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long:  `Удаляет сохраненный токен. Повторный выход ничего не делает.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := view.App(cmd)
		if err != nil {
			return err
		}

		app.Session().Logout(cmd.Context())
		view.Success("Выход выполнен")
		return nil
	},
}
