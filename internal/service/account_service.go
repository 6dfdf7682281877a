package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bankmanage/internal/cache"
	"bankmanage/internal/errors"
	"bankmanage/internal/model"
	"bankmanage/internal/repository"
)

// CreateAccountCommand carries the fields of an account creation request.
// Email is the only optional field.
type CreateAccountCommand struct {
	AccountHolderName string
	ContactNumber     string
	IDCard            string
	EmailAddress      string
	Balance           decimal.Decimal
	Description       string
	BankCardNumber    string
	UserID            string
}

// UpdateAccountCommand carries an account update. Status is accepted on the
// wire but never applied to the stored status; only delete changes status.
type UpdateAccountCommand struct {
	CreateAccountCommand
	Status string
}

// AccountService orchestrates account creation, update, soft deletion and the
// cached list/detail reads.
type AccountService interface {
	CreateAccount(ctx context.Context, cmd CreateAccountCommand) (*model.BankAccount, error)
	UpdateAccount(ctx context.Context, cmd UpdateAccountCommand) (string, error)
	DeleteAccount(ctx context.Context, cardNumber string) (string, error)
	ListAccounts(ctx context.Context, pageNo, pageSize int, userID string) (*model.AccountPage, error)
	AccountDetail(ctx context.Context, cardNumber string) (*model.AccountView, error)
}

type accountService struct {
	repo  repository.AccountRepository
	cache cache.AccountCache
}

// NewAccountService creates a new account service.
func NewAccountService(repo repository.AccountRepository, cache cache.AccountCache) AccountService {
	return &accountService{repo: repo, cache: cache}
}

// CreateAccount creates an ACTIVE account for a previously unseen card number.
// The pre-check counts DELETED rows too, and a racing insert losing to the
// unique index is reported the same way as a pre-check hit.
func (s *accountService) CreateAccount(ctx context.Context, cmd CreateAccountCommand) (*model.BankAccount, error) {
	count, err := s.repo.CountByCardNumber(ctx, cmd.BankCardNumber)
	if err != nil {
		return nil, err
	}
	if count >= 1 {
		return nil, errors.ErrAccountAlreadyExists
	}

	account := newAccount(cmd, time.Now())
	if err := s.repo.Create(ctx, account); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, errors.ErrAccountAlreadyExists
		}
		return nil, err
	}

	// The list cache may already hold stale pages for this user.
	s.cache.InvalidatePages(ctx)
	s.cache.InvalidateAccounts(ctx, cmd.BankCardNumber)
	return account, nil
}

// UpdateAccount overwrites the mutable fields of an ACTIVE account. The
// caller must re-fetch for the latest state.
func (s *accountService) UpdateAccount(ctx context.Context, cmd UpdateAccountCommand) (string, error) {
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.AccountRepository) error {
		account, err := tx.FindByCardNumber(ctx, cmd.BankCardNumber)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrAccountNotExists
			}
			return err
		}
		if account.Status != model.AccountStatusActive {
			return errors.ErrAccountStatusNotAllowed
		}
		if err := tx.UpdateFields(ctx, cmd.BankCardNumber, cmd.Balance, cmd.IDCard, cmd.ContactNumber, cmd.Description, time.Now()); err != nil {
			if repository.IsDuplicateKey(err) {
				return errors.ErrAccountAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.cache.InvalidatePages(ctx)
	s.cache.InvalidateAccounts(ctx, cmd.BankCardNumber)
	return "update success", nil
}

// DeleteAccount soft-deletes an account by flipping its status to DELETED.
// Unlike update, any non-DELETED status may be deleted.
func (s *accountService) DeleteAccount(ctx context.Context, cardNumber string) (string, error) {
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.AccountRepository) error {
		if _, err := tx.FindByCardNumber(ctx, cardNumber); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrAccountNotExists
			}
			return err
		}
		return tx.UpdateStatus(ctx, cardNumber, model.AccountStatusDeleted)
	})
	if err != nil {
		return "", err
	}

	s.cache.InvalidatePages(ctx)
	s.cache.InvalidateAccounts(ctx, cardNumber)
	return "delete success", nil
}

// ListAccounts returns one 1-indexed page of a user's accounts, read through
// the page cache.
func (s *accountService) ListAccounts(ctx context.Context, pageNo, pageSize int, userID string) (*model.AccountPage, error) {
	if pageNo < 1 || pageSize < 1 {
		return nil, errors.BadRequest("pageNo and pageSize must be positive")
	}

	if page, ok := s.cache.GetPage(ctx, pageNo, pageSize, userID); ok {
		return page, nil
	}

	accounts, total, err := s.repo.ListByUser(ctx, userID, (pageNo-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	views := make([]model.AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, toAccountView(&accounts[i]))
	}
	page := &model.AccountPage{
		PageNo:   pageNo,
		PageSize: pageSize,
		Total:    total,
		Data:     views,
	}

	s.cache.SetPage(ctx, pageNo, pageSize, userID, page)
	return page, nil
}

// AccountDetail returns the projection of one account, read through the
// detail cache.
func (s *accountService) AccountDetail(ctx context.Context, cardNumber string) (*model.AccountView, error) {
	if view, ok := s.cache.GetAccount(ctx, cardNumber); ok {
		return view, nil
	}

	account, err := s.repo.FindByCardNumber(ctx, cardNumber)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAccountNotExists
		}
		return nil, err
	}

	view := toAccountView(account)
	s.cache.SetAccount(ctx, cardNumber, &view)
	return &view, nil
}
