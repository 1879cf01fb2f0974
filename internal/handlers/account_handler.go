package handlers

import (
	"net/http"
	"strings"

	"ledger-bot/internal/dto"
	"ledger-bot/internal/errors"
	"ledger-bot/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount opens an account for the authenticated user
//
// Method: POST /api/v1/accounts
//
// Success Response: 201 Created with the account
// Error Responses:
//   - 400: Invalid request body
//   - 409: ACCOUNT_002 - Title already used by another account
//   - 422: COMMAND_006 - Initial balance out of range
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	balance := decimal.Zero
	if raw := strings.TrimSpace(req.Balance); raw != "" {
		balance, err = decimal.NewFromString(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid balance"))
		}
	}

	account, err := h.accountService.CreateAccount(c.Request().Context(), userID, req.Title, req.Currency, balance)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}

// ListAccounts returns the user's accounts with balances, ordered by title
//
// Method: GET /api/v1/accounts
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accounts, err := h.accountService.ListAccounts(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{Accounts: accounts})
}

// RenameAccount changes the title of an account
//
// Method: PATCH /api/v1/accounts/:id
//
// Error Responses:
//   - 404: ACCOUNT_001 - Account not found
//   - 409: ACCOUNT_002 - Title already used by another account
func (h *AccountHandler) RenameAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, ok, err := getIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.RenameAccountRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	account, err := h.accountService.RenameAccount(c.Request().Context(), userID, accountID, req.Title)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an account with its entries and transfers
//
// Method: DELETE /api/v1/accounts/:id
//
// Success Response: 204 No Content
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, ok, err := getIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.accountService.DeleteAccount(c.Request().Context(), userID, accountID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
