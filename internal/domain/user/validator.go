package user

import (
	"fmt"
	"strings"
)

// Validator checks the credential forms before anything is sent. Only
// presence is checked here; password policy belongs to the backend.
type Validator interface {
	ValidateLogin(req BaseRequest) error
	ValidateRegister(req BaseRequest, confirm string) error
}

type FormValidator struct {
	requireConfirm bool
}

// NewFormValidator builds the login and registration form validator.
func NewFormValidator(requireConfirm bool) *FormValidator {
	return &FormValidator{requireConfirm: requireConfirm}
}

func (v *FormValidator) ValidateLogin(req BaseRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateRegister checks the registration form. confirm is compared with
// the password only when the validator was built with requireConfirm.
func (v *FormValidator) ValidateRegister(req BaseRequest, confirm string) error {
	if err := v.ValidateLogin(req); err != nil {
		return err
	}

	if v.requireConfirm && req.Password != confirm {
		return ErrPasswordMismatch
	}

	return nil
}
