package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bankmanage/internal/model"
)

// AccountRepository defines bank account persistence operations. Lookups are
// scoped to non-DELETED rows unless noted.
type AccountRepository interface {
	Create(ctx context.Context, account *model.BankAccount) error
	// FindByCardNumber returns the unique non-DELETED account for the card
	// number, or gorm.ErrRecordNotFound.
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.BankAccount, error)
	// FindByCardNumberForUpdate is FindByCardNumber with a row-level lock;
	// only meaningful inside WithTransaction.
	FindByCardNumberForUpdate(ctx context.Context, cardNumber string) (*model.BankAccount, error)
	// CountByCardNumber counts all rows for the card number, DELETED rows
	// included. Used by the creation pre-check, so a deleted card number
	// cannot be reused.
	CountByCardNumber(ctx context.Context, cardNumber string) (int64, error)
	UpdateFields(ctx context.Context, cardNumber string, balance decimal.Decimal, idCard, contactNumber, description string, updatedAt time.Time) error
	UpdateBalance(ctx context.Context, cardNumber string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, cardNumber string, status model.AccountStatus) error
	// ListByUser returns one page of the user's accounts plus the total row
	// count for that user, without a status filter.
	ListByUser(ctx context.Context, userUID string, offset, limit int) ([]model.BankAccount, int64, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AccountRepository) error) error
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts a new account row.
func (r *accountRepository) Create(ctx context.Context, account *model.BankAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// FindByCardNumber finds the non-DELETED account for a card number.
func (r *accountRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*model.BankAccount, error) {
	var account model.BankAccount
	if err := r.db.WithContext(ctx).
		Where("bank_card_number = ? AND status <> ?", cardNumber, model.AccountStatusDeleted).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByCardNumberForUpdate locks and fetches the non-DELETED account row.
func (r *accountRepository) FindByCardNumberForUpdate(ctx context.Context, cardNumber string) (*model.BankAccount, error) {
	var account model.BankAccount
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("bank_card_number = ? AND status <> ?", cardNumber, model.AccountStatusDeleted).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// CountByCardNumber counts all rows for a card number, including DELETED ones.
func (r *accountRepository) CountByCardNumber(ctx context.Context, cardNumber string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.BankAccount{}).
		Where("bank_card_number = ?", cardNumber).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateFields overwrites the mutable fields of the row matching the card
// number. No-op when no row matches.
func (r *accountRepository) UpdateFields(ctx context.Context, cardNumber string, balance decimal.Decimal, idCard, contactNumber, description string, updatedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.BankAccount{}).
		Where("bank_card_number = ?", cardNumber).
		Updates(map[string]interface{}{
			"balance":        balance,
			"id_card":        idCard,
			"contact_number": contactNumber,
			"description":    description,
			"updated_at":     updatedAt,
		}).Error
}

// UpdateBalance updates the balance of the row matching the card number.
func (r *accountRepository) UpdateBalance(ctx context.Context, cardNumber string, balance decimal.Decimal, updatedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.BankAccount{}).
		Where("bank_card_number = ?", cardNumber).
		Updates(map[string]interface{}{
			"balance":    balance,
			"updated_at": updatedAt,
		}).Error
}

// UpdateStatus updates the status of the row matching the card number.
func (r *accountRepository) UpdateStatus(ctx context.Context, cardNumber string, status model.AccountStatus) error {
	return r.db.WithContext(ctx).Model(&model.BankAccount{}).
		Where("bank_card_number = ?", cardNumber).
		Update("status", status).Error
}

// ListByUser returns one page of accounts for a user and the total row count.
func (r *accountRepository) ListByUser(ctx context.Context, userUID string, offset, limit int) ([]model.BankAccount, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.BankAccount{}).
		Where("user_uid = ?", userUID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accounts []model.BankAccount
	if err := r.db.WithContext(ctx).
		Where("user_uid = ?", userUID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&accounts).Error; err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

// WithTransaction executes a function within a database transaction.
func (r *accountRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AccountRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &accountRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
