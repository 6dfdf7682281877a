package main

import (
	"log"
	"net/http"
	"os"

	_ "bankmanage/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bankmanage/internal/cache"
	"bankmanage/internal/config"
	"bankmanage/internal/db"
	"bankmanage/internal/handler"
	"bankmanage/internal/model"
	"bankmanage/internal/repository"
	"bankmanage/internal/router"
	"bankmanage/internal/service"
)

// @title Bank Account Manage API
// @version 1.0
// @description Bank account management with creation, update, soft deletion, paginated listing, detail lookup and two-account cash transfer.
// @host localhost:8080
// @BasePath /bank/account/manage/v1
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop the table if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping bankaccount table...")
		if err := gormDB.Migrator().DropTable(&model.BankAccount{}); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}

	if err := gormDB.AutoMigrate(&model.BankAccount{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	accountCache := cache.NewAccountCache(cacheClient)

	accountRepo := repository.NewAccountRepository(gormDB)

	accountService := service.NewAccountService(accountRepo, accountCache)
	transferService := service.NewTransferService(accountRepo, accountCache)

	accountHandler := handler.NewAccountHandler(accountService)
	transferHandler := handler.NewTransferHandler(transferService)

	router.Register(e, accountHandler, transferHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
