package health

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) CheckConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name            string
		pingErr         error
		expectedBackend string
		expectedError   string
	}{
		{
			name:            "backend up",
			expectedBackend: "up",
		},
		{
			name:            "backend down",
			pingErr:         errors.New("connection refused"),
			expectedBackend: "down",
			expectedError:   "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			pinger := new(MockPinger)
			pinger.On("CheckConnection", mock.Anything).Return(tt.pingErr)
			handler := NewHandler(pinger, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, "OK", output.Body.Status)
			assert.Equal(t, tt.expectedBackend, output.Body.Backend)
			assert.Equal(t, tt.expectedError, output.Body.Error)
			pinger.AssertExpectations(t)
		})
	}
}

func TestNewHandler(t *testing.T) {
	// Arrange
	log := slog.Default()
	middleware := huma.Middlewares{}

	// Act
	handler := NewHandler(new(MockPinger), log, middleware)

	// Assert
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
