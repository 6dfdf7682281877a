package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus represents the lifecycle status of a bank account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusFrozen    AccountStatus = "FROZEN"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusDormant   AccountStatus = "DORMANT"
	AccountStatusClosed    AccountStatus = "CLOSED"
	AccountStatusDeleted   AccountStatus = "DELETED"
)

// BankAccount is the persisted account row. Deletion is logical: the status
// flips to DELETED and the row is retained, so the unique index on the card
// number also blocks reuse of a deleted card number.
type BankAccount struct {
	ID                uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	UserUID           string          `json:"user_uid" gorm:"column:user_uid;size:100;not null;index:idx_user_uid"`
	IDCard            string          `json:"id_card" gorm:"column:id_card;size:100;not null"`
	AccountHolderName string          `json:"account_holder_name" gorm:"size:100;not null"`
	ContactNumber     string          `json:"contact_number" gorm:"size:100;not null"`
	BankCardNumber    string          `json:"bank_card_number" gorm:"size:100;not null;uniqueIndex"`
	Balance           decimal.Decimal `json:"balance" gorm:"type:decimal(15,2);not null"`
	Status            AccountStatus   `json:"status" gorm:"size:20;not null"`
	Description       string          `json:"description" gorm:"size:200"`
	EmailAddress      string          `json:"email_address" gorm:"size:200"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName keeps the legacy table name.
func (BankAccount) TableName() string {
	return "bankaccount"
}
