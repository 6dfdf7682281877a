package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankmanage/internal/config"
	"bankmanage/internal/db"
	"bankmanage/internal/model"
	"bankmanage/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.BankAccount{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewAccountRepository(gormDB)
	ctx := context.Background()

	accounts := fixtureAccounts()
	created, skipped := 0, 0
	for i := range accounts {
		count, err := repo.CountByCardNumber(ctx, accounts[i].BankCardNumber)
		if err != nil {
			log.Fatalf("Failed to check account %s: %v", accounts[i].BankCardNumber, err)
		}
		if count > 0 {
			skipped++
			continue
		}
		if err := repo.Create(ctx, &accounts[i]); err != nil {
			log.Fatalf("Failed to create account %s: %v", accounts[i].BankCardNumber, err)
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New accounts created: %d", created)
	log.Printf("  - Existing accounts skipped: %d", skipped)
}

// fixtureAccounts builds the two demo transfer accounts plus 30 pagination
// fixtures owned by userId1 with balances 100..129.
func fixtureAccounts() []model.BankAccount {
	now := time.Now()
	accounts := []model.BankAccount{
		demoAccount("123456", "tucker", now),
		demoAccount("1235", "tony", now),
	}
	for i := 0; i < 30; i++ {
		accounts = append(accounts, model.BankAccount{
			UserUID:           "userId1",
			IDCard:            fmt.Sprintf("440101%016d", i),
			AccountHolderName: "userId1",
			ContactNumber:     "13800138000",
			BankCardNumber:    "622202" + uuid.NewString(),
			Balance:           decimal.NewFromInt(int64(100 + i)),
			Status:            model.AccountStatusActive,
			Description:       fmt.Sprintf("seed fixture %d", i),
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}
	return accounts
}

func demoAccount(cardNumber, holderName string, now time.Time) model.BankAccount {
	return model.BankAccount{
		UserUID:           "1234567",
		IDCard:            "4305*****",
		AccountHolderName: holderName,
		ContactNumber:     "131222222222",
		BankCardNumber:    cardNumber,
		Balance:           decimal.NewFromInt(100),
		Status:            model.AccountStatusActive,
		Description:       "demo transfer account",
		EmailAddress:      holderName + "@example.com",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
