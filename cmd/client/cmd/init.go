// cmd/client/cmd/init.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/account"
	"banker/cmd/client/cmd/admin"
	"banker/cmd/client/cmd/auth"
	"banker/cmd/client/cmd/view"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Проверить настройки клиента",
	Long: `Команда init показывает, куда клиент обращается и где хранит токен,
и проверяет соединение с банковским API.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println("=== Banker ===")
		fmt.Println()
		fmt.Printf("Сервер:          %s\n", cfg.BaseURL())
		fmt.Printf("Хранилище токена: %s\n", cfg.CredentialBackend)
		fmt.Printf("Каталог:         %s\n", cfg.ConfigDir)
		fmt.Printf("Сессия:          %s\n", app.Session().State())
		fmt.Println()

		fmt.Println("Проверка соединения с сервером...")
		if err := app.CheckConnection(cmd.Context()); err != nil {
			view.Warn("не удалось подключиться к серверу: %v", err)
			return nil
		}
		view.Success("Соединение с сервером установлено")

		fmt.Println()
		fmt.Println("Что дальше:")
		fmt.Println("1. Зарегистрируйтесь: banker auth register")
		fmt.Println("2. Войдите в систему: banker auth login")
		fmt.Println("3. Откройте дашборд: banker account show")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(account.AccountCmd)
	account.AccountCmd.AddCommand(account.ShowCmd)
	account.AccountCmd.AddCommand(account.HistoryCmd)
	account.AccountCmd.AddCommand(account.TransferCmd)
	account.AccountCmd.AddCommand(account.BeneficiaryCmd)
	account.BeneficiaryCmd.AddCommand(account.BeneficiaryAddCmd)

	rootCmd.AddCommand(admin.AdminCmd)
	admin.AdminCmd.AddCommand(admin.StatsCmd)
	admin.AdminCmd.AddCommand(admin.AccountCmd)
	admin.AdminCmd.AddCommand(admin.CreateUserCmd)
	admin.AdminCmd.AddCommand(admin.AddMoneyCmd)
}
