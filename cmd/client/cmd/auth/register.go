// cmd/client/cmd/auth/register.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/access"
	"banker/internal/domain/user"
)

var registerUsername string

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя на банковском сервере.

Регистрация не выполняет вход: после нее выполните banker auth login.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := view.App(cmd)
		if err != nil {
			return err
		}
		if _, err := view.Enter(app, access.Register); err != nil {
			return err
		}

		view.Header("Регистрация нового пользователя")

		username := view.OrPrompt(registerUsername, "Имя пользователя")
		password, err := view.Secret("Пароль")
		if err != nil {
			return err
		}
		confirm, err := view.Secret("Повторите пароль")
		if err != nil {
			return err
		}

		req := user.BaseRequest{Username: username, Password: password}
		if err := user.NewFormValidator(true).ValidateRegister(req, confirm); err != nil {
			return err
		}

		fmt.Println("Регистрация...")
		msg, err := app.Session().Register(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		fmt.Println()
		view.Success("%s", msg)
		fmt.Println("Теперь вы можете войти в систему: banker auth login")

		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "имя пользователя")
}
