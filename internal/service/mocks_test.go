package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"bankmanage/internal/model"
	"bankmanage/internal/repository"
)

// MockAccountRepository is a mock implementation of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *model.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*model.BankAccount, error) {
	args := m.Called(ctx, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) FindByCardNumberForUpdate(ctx context.Context, cardNumber string) (*model.BankAccount, error) {
	args := m.Called(ctx, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankAccount), args.Error(1)
}

func (m *MockAccountRepository) CountByCardNumber(ctx context.Context, cardNumber string) (int64, error) {
	args := m.Called(ctx, cardNumber)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) UpdateFields(ctx context.Context, cardNumber string, balance decimal.Decimal, idCard, contactNumber, description string, updatedAt time.Time) error {
	args := m.Called(ctx, cardNumber, balance, idCard, contactNumber, description, updatedAt)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, cardNumber string, balance decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, cardNumber, balance, updatedAt)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateStatus(ctx context.Context, cardNumber string, status model.AccountStatus) error {
	args := m.Called(ctx, cardNumber, status)
	return args.Error(0)
}

func (m *MockAccountRepository) ListByUser(ctx context.Context, userUID string, offset, limit int) ([]model.BankAccount, int64, error) {
	args := m.Called(ctx, userUID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.BankAccount), args.Get(1).(int64), args.Error(2)
}

// WithTransaction runs the callback against the mock itself, mirroring the
// real implementation's pass-through of a transactional repository.
func (m *MockAccountRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.AccountRepository) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

// MockAccountCache is a mock implementation of cache.AccountCache.
type MockAccountCache struct {
	mock.Mock
}

func (m *MockAccountCache) GetAccount(ctx context.Context, cardNumber string) (*model.AccountView, bool) {
	args := m.Called(ctx, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.AccountView), args.Bool(1)
}

func (m *MockAccountCache) SetAccount(ctx context.Context, cardNumber string, view *model.AccountView) {
	m.Called(ctx, cardNumber, view)
}

func (m *MockAccountCache) GetPage(ctx context.Context, pageNo, pageSize int, userID string) (*model.AccountPage, bool) {
	args := m.Called(ctx, pageNo, pageSize, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.AccountPage), args.Bool(1)
}

func (m *MockAccountCache) SetPage(ctx context.Context, pageNo, pageSize int, userID string, page *model.AccountPage) {
	m.Called(ctx, pageNo, pageSize, userID, page)
}

func (m *MockAccountCache) InvalidateAccounts(ctx context.Context, cardNumbers ...string) {
	m.Called(ctx, cardNumbers)
}

func (m *MockAccountCache) InvalidatePages(ctx context.Context) {
	m.Called(ctx)
}
