package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValidator_ValidateLogin(t *testing.T) {
	validator := NewFormValidator(true)

	tests := []struct {
		name        string
		req         BaseRequest
		wantErr     bool
		expectedErr string
	}{
		{
			name:    "valid login",
			req:     BaseRequest{Username: "alice", Password: "secret"},
			wantErr: false,
		},
		{
			name:        "empty username",
			req:         BaseRequest{Password: "secret"},
			wantErr:     true,
			expectedErr: "username is required",
		},
		{
			name:        "blank username",
			req:         BaseRequest{Username: "   ", Password: "secret"},
			wantErr:     true,
			expectedErr: "username is required",
		},
		{
			name:        "empty password",
			req:         BaseRequest{Username: "alice"},
			wantErr:     true,
			expectedErr: "password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateLogin(tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFormValidator_ValidateRegister(t *testing.T) {
	tests := []struct {
		name           string
		requireConfirm bool
		req            BaseRequest
		confirm        string
		wantErr        error
	}{
		{
			name:           "matching confirmation",
			requireConfirm: true,
			req:            BaseRequest{Username: "bob", Password: "pw"},
			confirm:        "pw",
		},
		{
			name:           "mismatch",
			requireConfirm: true,
			req:            BaseRequest{Username: "bob", Password: "pw"},
			confirm:        "other",
			wantErr:        ErrPasswordMismatch,
		},
		{
			name:           "confirmation not required",
			requireConfirm: false,
			req:            BaseRequest{Username: "bob", Password: "pw"},
			confirm:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFormValidator(tt.requireConfirm).ValidateRegister(tt.req, tt.confirm)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
