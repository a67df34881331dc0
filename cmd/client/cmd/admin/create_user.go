package admin

import (
	"fmt"

	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/admin"
)

var (
	newUsername string
	newIsAdmin  bool
	ownerName   string
	fatherName  string
	phoneNumber string
)

var CreateUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Создать пользователя вместе со счетом",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := enterAdmin(cmd)
		if err != nil {
			return err
		}

		view.Header("Новый пользователь")
		req := admin.CreateUserRequest{
			Username:    view.OrPrompt(newUsername, "Имя пользователя"),
			IsAdmin:     newIsAdmin,
			Name:        view.OrPrompt(ownerName, "Имя владельца"),
			FatherName:  view.OrPrompt(fatherName, "Отчество"),
			PhoneNumber: view.OrPrompt(phoneNumber, "Телефон"),
		}
		req.Password, err = view.Secret("Пароль")
		if err != nil {
			return err
		}

		fmt.Println("Создание...")
		out, err := app.Admin().CreateUserAndAccount(cmd.Context(), req)
		if err != nil {
			return err
		}
		return view.AdminOutcome(out)
	},
}

func init() {
	CreateUserCmd.Flags().StringVarP(&newUsername, "username", "u", "", "имя пользователя")
	CreateUserCmd.Flags().BoolVar(&newIsAdmin, "admin", false, "выдать права администратора")
	CreateUserCmd.Flags().StringVar(&ownerName, "name", "", "имя владельца счета")
	CreateUserCmd.Flags().StringVar(&fatherName, "father-name", "", "отчество владельца счета")
	CreateUserCmd.Flags().StringVar(&phoneNumber, "phone", "", "телефон владельца счета")
}
