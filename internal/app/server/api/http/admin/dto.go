package admin

import (
	"github.com/shopspring/decimal"

	"banker/internal/domain/account"
	"banker/internal/domain/admin"
)

type DashboardResponse struct {
	Accounts              []account.Account `json:"accounts"`
	TotalMoney            decimal.Decimal   `json:"total_money"`
	TotalTransferredToday decimal.Decimal   `json:"total_transferred_today"`
}

func dashboardResponse(snap *admin.Snapshot) *DashboardResponse {
	if snap == nil {
		return nil
	}
	accounts := snap.Accounts
	if accounts == nil {
		accounts = []account.Account{}
	}
	return &DashboardResponse{
		Accounts:              accounts,
		TotalMoney:            snap.TotalMoney,
		TotalTransferredToday: snap.TotalTransferredToday,
	}
}

type dashboardOutput struct {
	Body *DashboardResponse
}

type accountInput struct {
	ID int64 `path:"id" minimum:"1"`
}

type accountOutput struct {
	Body *account.Account
}

type createUserInput struct {
	Body CreateUserRequest
}

// CreateUserRequest mirrors admin.CreateUserRequest; is_admin may be omitted.
type CreateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	IsAdmin     bool   `json:"is_admin,omitempty"`
	Name        string `json:"name"`
	FatherName  string `json:"father_name"`
	PhoneNumber string `json:"phone_number"`
}

type addMoneyInput struct {
	Body admin.AddMoneyInput
}

type workflowOutput struct {
	Body WorkflowResponse
}

type WorkflowResponse struct {
	Message      string             `json:"message"`
	Dashboard    *DashboardResponse `json:"dashboard,omitempty"`
	RefreshError string             `json:"refresh_error,omitempty"`
}

func workflowResponse(out *admin.Outcome) *workflowOutput {
	resp := WorkflowResponse{
		Message:   out.Message,
		Dashboard: dashboardResponse(out.Snapshot),
	}
	if out.RefreshErr != nil {
		resp.RefreshError = out.RefreshErr.Error()
	}
	return &workflowOutput{Body: resp}
}
