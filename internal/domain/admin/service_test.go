package admin

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"banker/internal/domain/account"
	"banker/internal/domain/failure"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) AllAccounts(ctx context.Context) ([]account.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]account.Account), args.Error(1)
}

func (m *MockRepository) TotalMoney(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRepository) TotalTransferredToday(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRepository) Account(ctx context.Context, id int64) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockRepository) CreateUserAccount(ctx context.Context, req CreateUserRequest) (*CreatedUser, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*CreatedUser)
	return u, args.Error(1)
}

func (m *MockRepository) AddMoney(ctx context.Context, req AddMoneyRequest) (AddMoneyResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(AddMoneyResponse), args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expectRoster(repo *MockRepository, accounts []account.Account) {
	repo.On("AllAccounts", mock.Anything).Return(accounts, nil)
	repo.On("TotalMoney", mock.Anything).Return(dec("175.50"), nil)
	repo.On("TotalTransferredToday", mock.Anything).Return(dec("50"), nil)
}

func TestService_LoadSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("all reads succeed", func(t *testing.T) {
		repo := new(MockRepository)
		expectRoster(repo, []account.Account{{ID: 1, IBAN: "DE001", Balance: dec("75.50")}})
		service := NewService(repo, slog.Default())

		snap, err := service.LoadSnapshot(ctx)

		require.NoError(t, err)
		assert.True(t, snap.TotalMoney.Equal(dec("175.5")))
		acc, ok := snap.ByIBAN("DE001")
		require.True(t, ok)
		assert.Equal(t, "75.5", acc.Balance.String())
		_, ok = snap.ByIBAN("XX")
		assert.False(t, ok)
	})

	t.Run("a failed total fails everything", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("AllAccounts", mock.Anything).Return([]account.Account{{ID: 1}}, nil)
		repo.On("TotalMoney", mock.Anything).Return(decimal.Zero, &failure.APIError{Status: 403, Detail: "Admin privileges required"})
		repo.On("TotalTransferredToday", mock.Anything).Return(decimal.Zero, nil)
		service := NewService(repo, slog.Default())

		snap, err := service.LoadSnapshot(ctx)

		assert.Nil(t, snap)
		assert.Equal(t, account.MsgFetchFailed, err.Error())
		assert.Equal(t, failure.CodeSnapshot, failure.CodeOf(err))
	})
}

func TestService_Account(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("Account", mock.Anything, int64(1)).Return(&account.Account{ID: 1, IBAN: "DE001"}, nil)
	repo.On("Account", mock.Anything, int64(99)).Return(nil, &failure.APIError{Status: 404, Detail: "Account not found"})
	service := NewService(repo, slog.Default())

	acc, err := service.Account(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "DE001", acc.IBAN)

	_, err = service.Account(ctx, 99)
	assert.Equal(t, "Account not found", err.Error())

	_, err = service.Account(ctx, 0)
	assert.ErrorIs(t, err, failure.ErrValidation)
}

func TestService_CreateUserAndAccount(t *testing.T) {
	ctx := context.Background()
	valid := CreateUserRequest{
		Username: "dave", Password: "pw", Name: "Dave", FatherName: "Tom", PhoneNumber: "+100",
	}

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateUserAccount", mock.Anything, valid).Return(&CreatedUser{ID: 5, Username: "dave"}, nil)
		expectRoster(repo, []account.Account{{ID: 5}})
		service := NewService(repo, slog.Default())

		out, err := service.CreateUserAndAccount(ctx, valid)

		require.NoError(t, err)
		assert.Equal(t, MsgUserCreated, out.Message)
		require.NotNil(t, out.Snapshot)
		assert.Len(t, out.Snapshot.Accounts, 1)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateUserAccount", mock.Anything, valid).Return(nil, &failure.APIError{Status: 400, Detail: "Username already registered"})
		service := NewService(repo, slog.Default())

		_, err := service.CreateUserAndAccount(ctx, valid)

		assert.Equal(t, "Username already registered", err.Error())
	})

	t.Run("network error", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateUserAccount", mock.Anything, valid).Return(nil, failure.Transport(errors.New("timeout")))
		service := NewService(repo, slog.Default())

		_, err := service.CreateUserAndAccount(ctx, valid)

		assert.Equal(t, MsgCreateUserFailed, err.Error())
	})

	missing := []struct {
		name  string
		clear func(r *CreateUserRequest)
	}{
		{name: "username", clear: func(r *CreateUserRequest) { r.Username = " " }},
		{name: "password", clear: func(r *CreateUserRequest) { r.Password = "" }},
		{name: "name", clear: func(r *CreateUserRequest) { r.Name = "" }},
		{name: "father name", clear: func(r *CreateUserRequest) { r.FatherName = "" }},
		{name: "phone", clear: func(r *CreateUserRequest) { r.PhoneNumber = "" }},
	}
	for _, tt := range missing {
		t.Run("missing "+tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			service := NewService(repo, slog.Default())
			req := valid
			tt.clear(&req)

			_, err := service.CreateUserAndAccount(ctx, req)

			assert.ErrorIs(t, err, failure.ErrValidation)
			repo.AssertNotCalled(t, "CreateUserAccount", mock.Anything, mock.Anything)
		})
	}
}

func TestService_AddMoney(t *testing.T) {
	ctx := context.Background()

	t.Run("success shows the server message", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("AddMoney", mock.Anything, AddMoneyRequest{IBAN: "DE001", Amount: json.Number("25.5")}).
			Return(AddMoneyResponse{Message: "Added 25.5 to account DE001", NewBalance: "75.5"}, nil)
		expectRoster(repo, []account.Account{{ID: 1, IBAN: "DE001", Balance: dec("75.50")}})
		service := NewService(repo, slog.Default())

		out, err := service.AddMoney(ctx, AddMoneyInput{IBAN: "DE001", Amount: "25.50"})

		require.NoError(t, err)
		assert.Equal(t, "Added 25.5 to account DE001", out.Message)
		acc, ok := out.Snapshot.ByIBAN("DE001")
		require.True(t, ok)
		assert.True(t, acc.Balance.Equal(dec("75.50")))
	})

	t.Run("unknown iban", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("AddMoney", mock.Anything, mock.Anything).Return(AddMoneyResponse{}, &failure.APIError{Status: 404})
		service := NewService(repo, slog.Default())

		_, err := service.AddMoney(ctx, AddMoneyInput{IBAN: "XX", Amount: "1"})

		assert.Equal(t, MsgAddMoneyFailed, err.Error())
	})

	tests := []struct {
		name string
		in   AddMoneyInput
	}{
		{name: "missing iban", in: AddMoneyInput{Amount: "1"}},
		{name: "missing amount", in: AddMoneyInput{IBAN: "DE001"}},
		{name: "zero", in: AddMoneyInput{IBAN: "DE001", Amount: "0"}},
		{name: "negative", in: AddMoneyInput{IBAN: "DE001", Amount: "-5"}},
		{name: "sub-cent", in: AddMoneyInput{IBAN: "DE001", Amount: "1.005"}},
		{name: "not a number", in: AddMoneyInput{IBAN: "DE001", Amount: "1,00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			service := NewService(repo, slog.Default())

			_, err := service.AddMoney(ctx, tt.in)

			assert.ErrorIs(t, err, failure.ErrValidation)
			repo.AssertNotCalled(t, "AddMoney", mock.Anything, mock.Anything)
		})
	}
}
