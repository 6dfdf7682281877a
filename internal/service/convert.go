package service

import (
	"time"

	"bankmanage/internal/model"
)

// newAccount builds a fresh entity from a create command. Status is forced to
// ACTIVE and both timestamps are stamped with now.
func newAccount(cmd CreateAccountCommand, now time.Time) *model.BankAccount {
	return &model.BankAccount{
		UserUID:           cmd.UserID,
		IDCard:            cmd.IDCard,
		AccountHolderName: cmd.AccountHolderName,
		ContactNumber:     cmd.ContactNumber,
		BankCardNumber:    cmd.BankCardNumber,
		Balance:           cmd.Balance,
		Status:            model.AccountStatusActive,
		Description:       cmd.Description,
		EmailAddress:      cmd.EmailAddress,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// toAccountView projects an entity onto the wire shape, formatting the
// balance to exactly two decimal places.
func toAccountView(account *model.BankAccount) model.AccountView {
	return model.AccountView{
		AccountHolderName: account.AccountHolderName,
		ContactNumber:     account.ContactNumber,
		IDCard:            account.IDCard,
		EmailAddress:      account.EmailAddress,
		Balance:           account.Balance.StringFixed(2),
		Description:       account.Description,
		BankCardNumber:    account.BankCardNumber,
		UserID:            account.UserUID,
	}
}
