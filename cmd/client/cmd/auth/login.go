// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/access"
)

var loginUsername string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Аутентификация на банковском сервере.

После входа токен сохраняется локально и используется последующими командами.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := view.App(cmd)
		if err != nil {
			return err
		}
		if _, err := view.Enter(app, access.Login); err != nil {
			return err
		}

		view.Header("Вход в систему")

		username := view.OrPrompt(loginUsername, "Имя пользователя")
		password, err := view.Secret("Пароль")
		if err != nil {
			return err
		}

		fmt.Println("Аутентификация...")
		id, err := app.Session().Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		fmt.Println()
		view.Success("Вход выполнен: %s (%s)", id.Subject, id.Role())
		fmt.Printf("Дашборд: banker %s\n", dashboardCommand(access.DashboardFor(id)))

		return nil
	},
}

func dashboardCommand(v access.View) string {
	if v == access.AdminDashboard {
		return "admin stats"
	}
	return "account show"
}

func init() {
	LoginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "имя пользователя")
}
