package failure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		fallback     string
		expectedMsg  string
		expectedCode string
	}{
		{
			name:         "server detail wins",
			err:          &APIError{Status: 401, Detail: "Invalid credentials"},
			fallback:     "Login failed",
			expectedMsg:  "Invalid credentials",
			expectedCode: CodeRejected,
		},
		{
			name:         "rejection without detail",
			err:          &APIError{Status: 500},
			fallback:     "Transfer failed",
			expectedMsg:  "Transfer failed",
			expectedCode: CodeRejected,
		},
		{
			name:         "transport error",
			err:          Transport(errors.New("connection refused")),
			fallback:     "Login failed",
			expectedMsg:  "Login failed",
			expectedCode: CodeTransport,
		},
		{
			name:         "in flight",
			err:          ErrInFlight,
			fallback:     "Transfer failed",
			expectedMsg:  ErrInFlight.Error(),
			expectedCode: CodeInFlight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := Wrap(tt.err, tt.fallback)
			require.NotNil(t, de)
			assert.Equal(t, tt.expectedMsg, de.Error())
			assert.Equal(t, tt.expectedCode, de.Code)
			assert.ErrorIs(t, de, tt.err)
		})
	}
}

func TestWrap_KeepsDomainError(t *testing.T) {
	v := Validation("amount is required")

	de := Wrap(v, "Transfer failed")

	assert.Same(t, v, de)
	assert.ErrorIs(t, de, ErrValidation)
	assert.Equal(t, CodeValidation, CodeOf(de))
}

func TestAPIError_GenericMessage(t *testing.T) {
	assert.Equal(t, GenericMessage, (&APIError{Status: 502}).Error())
	assert.Equal(t, "", Message(nil, "x"))
	assert.ErrorIs(t, Transport(errors.New("eof")), ErrTransport)
}
