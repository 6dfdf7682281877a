package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bankmanage/internal/errors"
	"bankmanage/internal/response"
)

var minAmount = decimal.RequireFromString("0.01")

func respond(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, response.Success(data))
}

// respondError maps a failure onto the response envelope. Business failures
// keep HTTP 200 with a non-zero envelope code; anything unclassified is a
// system error, never silently swallowed.
func respondError(c echo.Context, err error) error {
	var be *errors.BusinessError
	if stderrors.As(err, &be) {
		status := http.StatusOK
		if be.Code == errors.CodeBadRequest {
			status = http.StatusBadRequest
		}
		return c.JSON(status, response.Error(be.Code, be.Message, be.Description))
	}
	return c.JSON(http.StatusInternalServerError, response.Error(errors.CodeSystemError, "system error", err.Error()))
}

func badRequest(c echo.Context, description string) error {
	return c.JSON(http.StatusBadRequest, response.Error(errors.CodeBadRequest, "bad request", description))
}
