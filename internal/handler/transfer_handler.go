package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bankmanage/internal/service"
)

// TransferHandler handles transfer endpoints.
type TransferHandler struct {
	transferService service.TransferService
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(transferService service.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// BankTransferRequest represents a two-leg transfer request.
type BankTransferRequest struct {
	SendAccountHolderName    string          `json:"sendAccountHolderName" validate:"required,max=100"`
	SendBankCardNumber       string          `json:"sendBankCardNumber" validate:"required,max=100"`
	ReceiveAccountHolderName string          `json:"receiveAccountHolderName" validate:"required,max=100"`
	ReceiveBankCardNumber    string          `json:"receiveBankCardNumber" validate:"required,max=100"`
	Amount                   decimal.Decimal `json:"amount" validate:"required"`
}

// BankTransfer godoc
// @Summary Transfer cash between two accounts
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body BankTransferRequest true "Transfer data"
// @Success 200 {object} response.BaseResponse
// @Failure 400 {object} response.BaseResponse
// @Router /bankTransfer [post]
func (h *TransferHandler) BankTransfer(c echo.Context) error {
	var req BankTransferRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Amount.LessThan(minAmount) {
		return badRequest(c, "amount must be at least 0.01")
	}

	result, err := h.transferService.Transfer(c.Request().Context(), service.TransferCommand{
		SendAccountHolderName:    req.SendAccountHolderName,
		SendBankCardNumber:       req.SendBankCardNumber,
		ReceiveAccountHolderName: req.ReceiveAccountHolderName,
		ReceiveBankCardNumber:    req.ReceiveBankCardNumber,
		Amount:                   req.Amount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, result)
}
