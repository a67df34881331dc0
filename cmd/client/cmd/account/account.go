package account

import (
	"context"

	"github.com/spf13/cobra"

	"banker/cmd/client/cmd/view"
	"banker/internal/app/client"
	"banker/internal/domain/access"
)

// AccountCmd groups the account owner commands.
var AccountCmd = &cobra.Command{
	Use:   "account",
	Short: "Счет пользователя",
	Long:  `Дашборд, история операций, переводы и получатели.`,
}

// render shows whichever dashboard the guard allowed.
func render(ctx context.Context, app *client.App, v access.View) error {
	if v == access.AdminDashboard {
		snap, err := app.Admin().LoadSnapshot(ctx)
		if err != nil {
			return err
		}
		if view.JSONOutput {
			return view.PrintJSON(snap)
		}
		view.AdminDashboard(snap)
		return nil
	}

	snap, err := app.Accounts().LoadSnapshot(ctx)
	if err != nil {
		return err
	}
	if view.JSONOutput {
		return view.PrintJSON(snap)
	}
	view.UserDashboard(snap)
	return nil
}

// enterDashboard opens the user dashboard. Workflows are refused when the
// guard sends the caller elsewhere.
func enterDashboard(cmd *cobra.Command) (*client.App, error) {
	app, err := view.App(cmd)
	if err != nil {
		return nil, err
	}
	v, err := view.Enter(app, access.UserDashboard)
	if err != nil {
		return nil, err
	}
	if v != access.UserDashboard {
		return nil, errNotAccountHolder
	}
	return app, nil
}
