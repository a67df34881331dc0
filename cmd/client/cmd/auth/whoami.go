package auth

import (
	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/domain/access"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := view.App(cmd)
		if err != nil {
			return err
		}
		if _, err := view.Enter(app, access.Home); err != nil {
			return err
		}

		id, _ := app.Session().Identity()
		if view.JSONOutput {
			return view.PrintJSON(map[string]any{
				"username": id.Subject,
				"user_id":  id.UserID,
				"is_admin": id.IsAdmin,
				"role":     id.Role(),
			})
		}

		view.Identity(id)
		return nil
	},
}
