package view

import (
	"banker/internal/domain/account"
	"banker/internal/domain/admin"
)

// UserOutcome prints a finished account workflow and the refreshed dashboard.
func UserOutcome(out *account.Outcome) error {
	if JSONOutput {
		return PrintJSON(out)
	}

	Success("%s", out.Message)
	if out.RefreshErr != nil {
		Warn("дашборд не обновлен: %v", out.RefreshErr)
		return nil
	}
	UserDashboard(out.Snapshot)
	return nil
}

func AdminOutcome(out *admin.Outcome) error {
	if JSONOutput {
		return PrintJSON(out)
	}

	Success("%s", out.Message)
	if out.RefreshErr != nil {
		Warn("сводка не обновлена: %v", out.RefreshErr)
		return nil
	}
	AdminDashboard(out.Snapshot)
	return nil
}
