package dashboard

import "banker/internal/domain/account"

type DashboardResponse struct {
	Account            *account.Account      `json:"account" doc:"Null when the user has no account yet"`
	Beneficiaries      []account.Beneficiary `json:"beneficiaries"`
	RecentTransactions []account.Transaction `json:"recent_transactions" doc:"Newest first, at most ten"`
}

func dashboardResponse(snap *account.Snapshot) *DashboardResponse {
	if snap == nil {
		return nil
	}
	resp := &DashboardResponse{
		Account:            snap.Account,
		Beneficiaries:      snap.Beneficiaries,
		RecentTransactions: snap.RecentTransactions(),
	}
	if resp.Beneficiaries == nil {
		resp.Beneficiaries = []account.Beneficiary{}
	}
	if resp.RecentTransactions == nil {
		resp.RecentTransactions = []account.Transaction{}
	}
	return resp
}

type dashboardOutput struct {
	Body *DashboardResponse
}

type historyInput struct {
	Period string `query:"period" enum:"all,daily,weekly" doc:"Empty or all for the whole history"`
}

type historyOutput struct {
	Body []account.Transaction
}

type transferInput struct {
	Body account.TransferInput
}

type beneficiaryInput struct {
	Body account.BeneficiaryInput
}

type workflowOutput struct {
	Body WorkflowResponse
}

type WorkflowResponse struct {
	Message      string             `json:"message"`
	Dashboard    *DashboardResponse `json:"dashboard,omitempty"`
	RefreshError string             `json:"refresh_error,omitempty" doc:"Set when the action succeeded but the dashboard could not be reloaded"`
}

func workflowResponse(out *account.Outcome) *workflowOutput {
	resp := WorkflowResponse{
		Message:   out.Message,
		Dashboard: dashboardResponse(out.Snapshot),
	}
	if out.RefreshErr != nil {
		resp.RefreshError = out.RefreshErr.Error()
	}
	return &workflowOutput{Body: resp}
}
