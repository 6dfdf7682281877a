package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bankmanage/internal/errors"
	"bankmanage/internal/model"
)

func testCreateCommand() CreateAccountCommand {
	return CreateAccountCommand{
		AccountHolderName: "tucker",
		ContactNumber:     "131222222222",
		IDCard:            "4305*****",
		EmailAddress:      "tucker@example.com",
		Balance:           decimal.NewFromInt(100),
		Description:       "this is a test",
		BankCardNumber:    "123456",
		UserID:            "1234567",
	}
}

func activeAccount(cardNumber, holderName string, balance decimal.Decimal) *model.BankAccount {
	now := time.Now()
	return &model.BankAccount{
		ID:                1,
		UserUID:           "1234567",
		IDCard:            "4305*****",
		AccountHolderName: holderName,
		ContactNumber:     "131222222222",
		BankCardNumber:    cardNumber,
		Balance:           balance,
		Status:            model.AccountStatusActive,
		Description:       "this is a test",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestAccountService_CreateAccount(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(repo *MockAccountRepository, c *MockAccountCache)
		expectedError error
	}{
		{
			name: "successful creation",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				repo.On("CountByCardNumber", mock.Anything, "123456").Return(int64(0), nil)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.BankAccount")).Return(nil)
				c.On("InvalidatePages", mock.Anything).Return()
				c.On("InvalidateAccounts", mock.Anything, []string{"123456"}).Return()
			},
		},
		{
			name: "card number already exists",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				repo.On("CountByCardNumber", mock.Anything, "123456").Return(int64(1), nil)
			},
			expectedError: errors.ErrAccountAlreadyExists,
		},
		{
			name: "deleted card number still blocks creation",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				// CountByCardNumber counts DELETED rows too
				repo.On("CountByCardNumber", mock.Anything, "123456").Return(int64(2), nil)
			},
			expectedError: errors.ErrAccountAlreadyExists,
		},
		{
			name: "racing insert loses to unique index",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				repo.On("CountByCardNumber", mock.Anything, "123456").Return(int64(0), nil)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.BankAccount")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrAccountAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAccountRepository)
			mockCache := new(MockAccountCache)
			tt.setupMock(mockRepo, mockCache)

			svc := NewAccountService(mockRepo, mockCache)
			account, err := svc.CreateAccount(context.Background(), testCreateCommand())

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, account)
				assert.Equal(t, "123456", account.BankCardNumber)
				assert.Equal(t, "tucker", account.AccountHolderName)
				assert.Equal(t, "1234567", account.UserUID)
				assert.Equal(t, model.AccountStatusActive, account.Status)
				assert.True(t, decimal.NewFromInt(100).Equal(account.Balance))
				assert.False(t, account.CreatedAt.IsZero())
				assert.Equal(t, account.CreatedAt, account.UpdatedAt)
			}

			mockRepo.AssertExpectations(t)
			mockCache.AssertExpectations(t)
		})
	}
}

// Calling create twice with the same card number yields exactly one success
// and one already-exists rejection, regardless of order.
func TestAccountService_CreateAccount_IdempotentRejection(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockCache := new(MockAccountCache)

	mockRepo.On("CountByCardNumber", mock.Anything, "123456").Return(int64(0), nil).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.BankAccount")).Return(nil).Once()
	mockRepo.On("CountByCardNumber", mock.Anything, "123456").Return(int64(1), nil).Once()
	mockCache.On("InvalidatePages", mock.Anything).Return()
	mockCache.On("InvalidateAccounts", mock.Anything, []string{"123456"}).Return()

	svc := NewAccountService(mockRepo, mockCache)

	first, err := svc.CreateAccount(context.Background(), testCreateCommand())
	assert.NoError(t, err)
	assert.NotNil(t, first)

	second, err := svc.CreateAccount(context.Background(), testCreateCommand())
	assert.Equal(t, errors.ErrAccountAlreadyExists, err)
	assert.Nil(t, second)

	mockRepo.AssertExpectations(t)
}

func TestAccountService_UpdateAccount(t *testing.T) {
	cmd := UpdateAccountCommand{
		CreateAccountCommand: testCreateCommand(),
		Status:               "FROZEN", // accepted on the wire, never applied
	}

	tests := []struct {
		name          string
		setupMock     func(repo *MockAccountRepository, c *MockAccountCache)
		expectedError error
	}{
		{
			name: "successful update",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				repo.On("WithTransaction", mock.Anything).Return(nil)
				repo.On("FindByCardNumber", mock.Anything, "123456").
					Return(activeAccount("123456", "tucker", decimal.NewFromInt(100)), nil)
				repo.On("UpdateFields", mock.Anything, "123456",
					mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(100)) }),
					"4305*****", "131222222222", "this is a test", mock.AnythingOfType("time.Time")).Return(nil)
				c.On("InvalidatePages", mock.Anything).Return()
				c.On("InvalidateAccounts", mock.Anything, []string{"123456"}).Return()
			},
		},
		{
			name: "account does not exist",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				repo.On("WithTransaction", mock.Anything).Return(nil)
				repo.On("FindByCardNumber", mock.Anything, "123456").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrAccountNotExists,
		},
		{
			name: "non-active account rejects update",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				frozen := activeAccount("123456", "tucker", decimal.NewFromInt(100))
				frozen.Status = model.AccountStatusFrozen
				repo.On("WithTransaction", mock.Anything).Return(nil)
				repo.On("FindByCardNumber", mock.Anything, "123456").Return(frozen, nil)
			},
			expectedError: errors.ErrAccountStatusNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAccountRepository)
			mockCache := new(MockAccountCache)
			tt.setupMock(mockRepo, mockCache)

			svc := NewAccountService(mockRepo, mockCache)
			result, err := svc.UpdateAccount(context.Background(), cmd)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, result)
				mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "update success", result)
				// the supplied status label is never written
				mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			}

			mockRepo.AssertExpectations(t)
			mockCache.AssertExpectations(t)
		})
	}
}

func TestAccountService_DeleteAccount(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(repo *MockAccountRepository, c *MockAccountCache)
		expectedError error
	}{
		{
			name: "successful delete",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				repo.On("WithTransaction", mock.Anything).Return(nil)
				repo.On("FindByCardNumber", mock.Anything, "123456").
					Return(activeAccount("123456", "tucker", decimal.NewFromInt(100)), nil)
				repo.On("UpdateStatus", mock.Anything, "123456", model.AccountStatusDeleted).Return(nil)
				c.On("InvalidatePages", mock.Anything).Return()
				c.On("InvalidateAccounts", mock.Anything, []string{"123456"}).Return()
			},
		},
		{
			name: "frozen account may still be deleted",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				frozen := activeAccount("123456", "tucker", decimal.NewFromInt(100))
				frozen.Status = model.AccountStatusFrozen
				repo.On("WithTransaction", mock.Anything).Return(nil)
				repo.On("FindByCardNumber", mock.Anything, "123456").Return(frozen, nil)
				repo.On("UpdateStatus", mock.Anything, "123456", model.AccountStatusDeleted).Return(nil)
				c.On("InvalidatePages", mock.Anything).Return()
				c.On("InvalidateAccounts", mock.Anything, []string{"123456"}).Return()
			},
		},
		{
			name: "account does not exist",
			setupMock: func(repo *MockAccountRepository, c *MockAccountCache) {
				repo.On("WithTransaction", mock.Anything).Return(nil)
				repo.On("FindByCardNumber", mock.Anything, "123456").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrAccountNotExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAccountRepository)
			mockCache := new(MockAccountCache)
			tt.setupMock(mockRepo, mockCache)

			svc := NewAccountService(mockRepo, mockCache)
			result, err := svc.DeleteAccount(context.Background(), "123456")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "delete success", result)
			}

			mockRepo.AssertExpectations(t)
			mockCache.AssertExpectations(t)
		})
	}
}

func TestAccountService_ListAccounts(t *testing.T) {
	seeded := make([]model.BankAccount, 0, 10)
	for i := 0; i < 10; i++ {
		account := activeAccount(fmt.Sprintf("NO-%d", i), "userId1", decimal.NewFromInt(int64(100+i)))
		account.UserUID = "userId1"
		seeded = append(seeded, *account)
	}

	mockRepo := new(MockAccountRepository)
	mockCache := new(MockAccountCache)
	mockCache.On("GetPage", mock.Anything, 1, 10, "userId1").Return(nil, false)
	mockRepo.On("ListByUser", mock.Anything, "userId1", 0, 10).Return(seeded, int64(30), nil)
	mockCache.On("SetPage", mock.Anything, 1, 10, "userId1", mock.AnythingOfType("*model.AccountPage")).Return()

	svc := NewAccountService(mockRepo, mockCache)
	page, err := svc.ListAccounts(context.Background(), 1, 10, "userId1")

	assert.NoError(t, err)
	assert.Equal(t, 1, page.PageNo)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, int64(30), page.Total)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, "100.00", page.Data[0].Balance)
	assert.Equal(t, "109.00", page.Data[9].Balance)
	assert.Equal(t, "NO-0", page.Data[0].BankCardNumber)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAccountService_ListAccounts_SecondPageOffset(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockCache := new(MockAccountCache)
	mockCache.On("GetPage", mock.Anything, 2, 10, "userId1").Return(nil, false)
	mockRepo.On("ListByUser", mock.Anything, "userId1", 10, 10).Return([]model.BankAccount{}, int64(30), nil)
	mockCache.On("SetPage", mock.Anything, 2, 10, "userId1", mock.AnythingOfType("*model.AccountPage")).Return()

	svc := NewAccountService(mockRepo, mockCache)
	page, err := svc.ListAccounts(context.Background(), 2, 10, "userId1")

	assert.NoError(t, err)
	assert.Equal(t, 2, page.PageNo)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_ListAccounts_InvalidPageRequest(t *testing.T) {
	svc := NewAccountService(new(MockAccountRepository), new(MockAccountCache))

	for _, args := range [][2]int{{0, 10}, {1, 0}, {-1, -1}} {
		page, err := svc.ListAccounts(context.Background(), args[0], args[1], "userId1")
		assert.Nil(t, page)
		var be *errors.BusinessError
		assert.ErrorAs(t, err, &be)
		assert.Equal(t, errors.CodeBadRequest, be.Code)
	}
}

func TestAccountService_ListAccounts_CacheHit(t *testing.T) {
	cached := &model.AccountPage{PageNo: 1, PageSize: 10, Total: 30}

	mockRepo := new(MockAccountRepository)
	mockCache := new(MockAccountCache)
	mockCache.On("GetPage", mock.Anything, 1, 10, "userId1").Return(cached, true)

	svc := NewAccountService(mockRepo, mockCache)
	page, err := svc.ListAccounts(context.Background(), 1, 10, "userId1")

	assert.NoError(t, err)
	assert.Equal(t, cached, page)
	mockRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_AccountDetail(t *testing.T) {
	t.Run("cache miss populates cache", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockCache := new(MockAccountCache)
		mockCache.On("GetAccount", mock.Anything, "123456").Return(nil, false)
		mockRepo.On("FindByCardNumber", mock.Anything, "123456").
			Return(activeAccount("123456", "tucker", decimal.NewFromInt(100)), nil)
		mockCache.On("SetAccount", mock.Anything, "123456", mock.AnythingOfType("*model.AccountView")).Return()

		svc := NewAccountService(mockRepo, mockCache)
		view, err := svc.AccountDetail(context.Background(), "123456")

		assert.NoError(t, err)
		assert.Equal(t, "100.00", view.Balance)
		assert.Equal(t, "tucker", view.AccountHolderName)
		assert.Equal(t, "1234567", view.UserID)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		cached := &model.AccountView{BankCardNumber: "123456", Balance: "100.00"}
		mockRepo := new(MockAccountRepository)
		mockCache := new(MockAccountCache)
		mockCache.On("GetAccount", mock.Anything, "123456").Return(cached, true)

		svc := NewAccountService(mockRepo, mockCache)
		view, err := svc.AccountDetail(context.Background(), "123456")

		assert.NoError(t, err)
		assert.Equal(t, cached, view)
		mockRepo.AssertNotCalled(t, "FindByCardNumber", mock.Anything, mock.Anything)
	})

	t.Run("account does not exist", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockCache := new(MockAccountCache)
		mockCache.On("GetAccount", mock.Anything, "123456").Return(nil, false)
		mockRepo.On("FindByCardNumber", mock.Anything, "123456").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAccountService(mockRepo, mockCache)
		view, err := svc.AccountDetail(context.Background(), "123456")

		assert.Nil(t, view)
		assert.Equal(t, errors.ErrAccountNotExists, err)
	})
}
