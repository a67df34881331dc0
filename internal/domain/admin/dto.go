package admin

import "encoding/json"

// CreateUserRequest is the body of POST /admin/create_user_account.
type CreateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	IsAdmin     bool   `json:"is_admin"`
	Name        string `json:"name"`
	FatherName  string `json:"father_name"`
	PhoneNumber string `json:"phone_number"`
}

// CreatedUser is what the backend answers to a user+account creation.
type CreatedUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Message  string `json:"message,omitempty"`
}

// AddMoneyInput is the add-money form as typed by the admin.
type AddMoneyInput struct {
	IBAN   string `json:"iban"`
	Amount string `json:"amount"`
}

// AddMoneyRequest is the body of POST /admin/add_money.
type AddMoneyRequest struct {
	IBAN   string      `json:"iban"`
	Amount json.Number `json:"amount"`
}

type AddMoneyResponse struct {
	Message    string      `json:"message"`
	NewBalance json.Number `json:"new_balance,omitempty"`
}
