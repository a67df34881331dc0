package session

import (
	"time"

	"banker/internal/app/server/api/http/middleware/guard"
	"banker/internal/domain/access"
	"banker/internal/domain/user"
)

type IdentityResponse struct {
	Subject   string     `json:"subject"`
	UserID    int64      `json:"user_id"`
	IsAdmin   bool       `json:"is_admin"`
	Role      string     `json:"role" enum:"user,admin"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func identityResponse(id user.Identity) *IdentityResponse {
	resp := &IdentityResponse{
		Subject: id.Subject,
		UserID:  id.UserID,
		IsAdmin: id.IsAdmin,
		Role:    id.Role(),
	}
	if !id.ExpiresAt.IsZero() {
		exp := id.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}

type stateOutput struct {
	Body StateResponse
}

type StateResponse struct {
	State    string            `json:"state" enum:"initializing,authenticated,anonymous"`
	Identity *IdentityResponse `json:"identity,omitempty"`
}

type viewOutput struct {
	Body ViewResponse
}

type ViewResponse struct {
	View access.View `json:"view"`
}

type loginInput struct {
	Body user.BaseRequest
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Identity   *IdentityResponse `json:"identity"`
	RedirectTo access.View       `json:"redirect_to"`
}

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Username        string `json:"username" minLength:"1"`
	Password        string `json:"password" minLength:"1"`
	ConfirmPassword string `json:"confirm_password" minLength:"1"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	Message    string      `json:"message"`
	RedirectTo access.View `json:"redirect_to"`
}

type homeOutput struct {
	Status   int
	Location string `header:"Location"`
	Body     guard.RedirectBody
}
