package admin

import (
	"errors"

	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/app/client"
	"banker/internal/domain/access"
)

var errNotAdmin = errors.New("команда доступна только администратору")

// AdminCmd - родительская команда для операций администратора
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Администрирование банка",
	Long:  `Сводка по банку, счета, создание пользователей и пополнение.`,
}

func enterAdmin(cmd *cobra.Command) (*client.App, error) {
	app, err := view.App(cmd)
	if err != nil {
		return nil, err
	}
	v, err := view.Enter(app, access.AdminDashboard)
	if err != nil {
		return nil, err
	}
	if v != access.AdminDashboard {
		return nil, errNotAdmin
	}
	return app, nil
}
