package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bankmanage/internal/cache"
	"bankmanage/internal/errors"
	"bankmanage/internal/repository"
)

var minTransferAmount = decimal.RequireFromString("0.01")

// TransferCommand carries both legs of a transfer. Holder names are matched
// against the stored names after trimming surrounding whitespace.
type TransferCommand struct {
	SendAccountHolderName    string
	SendBankCardNumber       string
	ReceiveAccountHolderName string
	ReceiveBankCardNumber    string
	Amount                   decimal.Decimal
}

// TransferService moves funds between two accounts.
type TransferService interface {
	Transfer(ctx context.Context, cmd TransferCommand) (string, error)
}

type transferService struct {
	repo  repository.AccountRepository
	cache cache.AccountCache
}

// NewTransferService creates a new transfer service.
func NewTransferService(repo repository.AccountRepository, cache cache.AccountCache) TransferService {
	return &transferService{repo: repo, cache: cache}
}

// Transfer debits the sender and credits the receiver as one transaction.
// Both rows are locked before any validation of their state, so two
// concurrent transfers touching the same account serialize on the row lock
// instead of both reading a stale pre-debit balance.
func (s *transferService) Transfer(ctx context.Context, cmd TransferCommand) (string, error) {
	if cmd.Amount.LessThan(minTransferAmount) {
		return "", errors.BadRequest("amount must be at least 0.01")
	}
	if cmd.SendBankCardNumber == cmd.ReceiveBankCardNumber {
		return "", errors.ErrTransferNotAllowed.WithDescription("cannot transfer to the same account")
	}

	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.AccountRepository) error {
		sender, err := tx.FindByCardNumberForUpdate(ctx, cmd.SendBankCardNumber)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrAccountNotExists.
					WithDescription(fmt.Sprintf("account %s does not exist", cmd.SendBankCardNumber))
			}
			return err
		}
		if sender.AccountHolderName != strings.TrimSpace(cmd.SendAccountHolderName) {
			return errors.ErrTransferNotAllowed.WithDescription("sender account name incorrect")
		}
		if sender.Balance.LessThan(cmd.Amount) {
			return errors.ErrTransferNotAllowed.WithDescription("insufficient balance")
		}

		receiver, err := tx.FindByCardNumberForUpdate(ctx, cmd.ReceiveBankCardNumber)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrAccountNotExists.
					WithDescription(fmt.Sprintf("account %s does not exist", cmd.ReceiveBankCardNumber))
			}
			return err
		}
		if receiver.AccountHolderName != strings.TrimSpace(cmd.ReceiveAccountHolderName) {
			return errors.ErrTransferNotAllowed.WithDescription("recipient account name incorrect")
		}

		now := time.Now()
		if err := tx.UpdateBalance(ctx, sender.BankCardNumber, sender.Balance.Sub(cmd.Amount), now); err != nil {
			return err
		}
		return tx.UpdateBalance(ctx, receiver.BankCardNumber, receiver.Balance.Add(cmd.Amount), now)
	})
	if err != nil {
		return "", err
	}

	s.cache.InvalidateAccounts(ctx, cmd.SendBankCardNumber, cmd.ReceiveBankCardNumber)
	s.cache.InvalidatePages(ctx)
	return "transfer cash successfully", nil
}
