package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bankmanage/internal/service"
)

// AccountHandler handles bank account endpoints.
type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateBankAccountRequest represents an account creation request.
type CreateBankAccountRequest struct {
	AccountHolderName string          `json:"accountHolderName" validate:"required,max=100"`
	ContactNumber     string          `json:"contactNumber" validate:"required,max=100"`
	IDCard            string          `json:"idCard" validate:"required,max=100"`
	EmailAddress      string          `json:"emailAddress" validate:"omitempty,max=200"`
	Balance           decimal.Decimal `json:"balance" validate:"required"`
	Description       string          `json:"description" validate:"required,max=200"`
	BankCardNumber    string          `json:"bankCardNumber" validate:"required,max=100"`
	UserID            string          `json:"userId" validate:"required,max=100"`
}

// UpdateBankAccountRequest represents an account update request. The status
// label is accepted for wire compatibility but never applied.
type UpdateBankAccountRequest struct {
	CreateBankAccountRequest
	Status string `json:"status" validate:"required"`
}

// DeleteBankAccountRequest represents an account deletion request.
type DeleteBankAccountRequest struct {
	BankCardNumber string `json:"bankCardNumber" validate:"required,max=100"`
}

// CreateBankAccount godoc
// @Summary Create a bank account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateBankAccountRequest true "Account data"
// @Success 200 {object} response.BaseResponse
// @Failure 400 {object} response.BaseResponse
// @Router /createBankAccount [post]
func (h *AccountHandler) CreateBankAccount(c echo.Context) error {
	var req CreateBankAccountRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Balance.LessThan(minAmount) {
		return badRequest(c, "balance must be at least 0.01")
	}

	account, err := h.accountService.CreateAccount(c.Request().Context(), service.CreateAccountCommand{
		AccountHolderName: req.AccountHolderName,
		ContactNumber:     req.ContactNumber,
		IDCard:            req.IDCard,
		EmailAddress:      req.EmailAddress,
		Balance:           req.Balance,
		Description:       req.Description,
		BankCardNumber:    req.BankCardNumber,
		UserID:            req.UserID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, account)
}

// UpdateBankAccount godoc
// @Summary Update a bank account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body UpdateBankAccountRequest true "Account data"
// @Success 200 {object} response.BaseResponse
// @Failure 400 {object} response.BaseResponse
// @Router /updateBankAccount [post]
func (h *AccountHandler) UpdateBankAccount(c echo.Context) error {
	var req UpdateBankAccountRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Balance.LessThan(minAmount) {
		return badRequest(c, "balance must be at least 0.01")
	}

	result, err := h.accountService.UpdateAccount(c.Request().Context(), service.UpdateAccountCommand{
		CreateAccountCommand: service.CreateAccountCommand{
			AccountHolderName: req.AccountHolderName,
			ContactNumber:     req.ContactNumber,
			IDCard:            req.IDCard,
			EmailAddress:      req.EmailAddress,
			Balance:           req.Balance,
			Description:       req.Description,
			BankCardNumber:    req.BankCardNumber,
			UserID:            req.UserID,
		},
		Status: req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, result)
}

// DeleteBankAccount godoc
// @Summary Soft-delete a bank account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body DeleteBankAccountRequest true "Card number"
// @Success 200 {object} response.BaseResponse
// @Failure 400 {object} response.BaseResponse
// @Router /deleteBankAccount [post]
func (h *AccountHandler) DeleteBankAccount(c echo.Context) error {
	var req DeleteBankAccountRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.accountService.DeleteAccount(c.Request().Context(), req.BankCardNumber)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, result)
}

// GetBankAccountPage godoc
// @Summary List a user's bank accounts
// @Tags accounts
// @Produce json
// @Param userId path string true "Owner user ID"
// @Param pageNo query int true "1-indexed page number"
// @Param pageSize query int true "Page size"
// @Success 200 {object} response.BaseResponse
// @Failure 400 {object} response.BaseResponse
// @Router /getBankAccountPage/userId/{userId} [get]
func (h *AccountHandler) GetBankAccountPage(c echo.Context) error {
	userID := c.Param("userId")
	pageNo, err := strconv.Atoi(c.QueryParam("pageNo"))
	if err != nil {
		return badRequest(c, "invalid pageNo")
	}
	pageSize, err := strconv.Atoi(c.QueryParam("pageSize"))
	if err != nil {
		return badRequest(c, "invalid pageSize")
	}

	page, err := h.accountService.ListAccounts(c.Request().Context(), pageNo, pageSize, userID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, page)
}

// GetBankAccountDetail godoc
// @Summary Get one bank account by card number
// @Tags accounts
// @Produce json
// @Param bankCardNumber path string true "Bank card number"
// @Success 200 {object} response.BaseResponse
// @Failure 400 {object} response.BaseResponse
// @Router /getBankAccountDetail/bankCardNumber/{bankCardNumber} [get]
func (h *AccountHandler) GetBankAccountDetail(c echo.Context) error {
	cardNumber := c.Param("bankCardNumber")
	if cardNumber == "" {
		return badRequest(c, "bankCardNumber is required")
	}

	view, err := h.accountService.AccountDetail(c.Request().Context(), cardNumber)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, view)
}
