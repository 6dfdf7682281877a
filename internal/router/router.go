package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bankmanage/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	accountHandler *handler.AccountHandler,
	transferHandler *handler.TransferHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/bank/account/manage/v1")

	v1.POST("/createBankAccount", accountHandler.CreateBankAccount)
	v1.POST("/updateBankAccount", accountHandler.UpdateBankAccount)
	v1.POST("/deleteBankAccount", accountHandler.DeleteBankAccount)
	v1.GET("/getBankAccountPage/userId/:userId", accountHandler.GetBankAccountPage)
	v1.GET("/getBankAccountDetail/bankCardNumber/:bankCardNumber", accountHandler.GetBankAccountDetail)
	v1.POST("/bankTransfer", transferHandler.BankTransfer)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a ready CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
