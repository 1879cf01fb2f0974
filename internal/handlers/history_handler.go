package handlers

import (
	"net/http"

	"ledger-bot/internal/dto"
	"ledger-bot/internal/errors"
	"ledger-bot/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultHistoryLimit = 20

// HistoryHandler lists and deletes recorded entries and transfers
type HistoryHandler struct {
	historyService services.HistoryServiceInterface
	ledgerService  services.LedgerServiceInterface
}

func NewHistoryHandler(historyService services.HistoryServiceInterface, ledgerService services.LedgerServiceInterface) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		ledgerService:  ledgerService,
	}
}

// ListEntries returns the user's entries, newest first
//
// Method: GET /api/v1/entries
//
// Query parameters:
//   - offset: Number of entries to skip (default: 0)
//   - limit: Page size (default: 20, max: 100)
func (h *HistoryHandler) ListEntries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset, limit := pageParams(c)
	entries, total, err := h.historyService.ListEntries(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.EntryListResponse{
		Entries: entries,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	})
}

// ListTransfers returns transfers touching the user's accounts, newest first
//
// Method: GET /api/v1/transfers
func (h *HistoryHandler) ListTransfers(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset, limit := pageParams(c)
	transfers, total, err := h.historyService.ListTransfers(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransferListResponse{
		Transfers: transfers,
		Total:     total,
		Offset:    offset,
		Limit:     limit,
	})
}

// DeleteEntry removes an entry and gives its amount back to the account
//
// Method: DELETE /api/v1/entries/:id
func (h *HistoryHandler) DeleteEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	entryID, ok, err := getIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.ledgerService.DeleteEntry(c.Request().Context(), userID, entryID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteTransfer removes a transfer and reverses both sides
//
// Method: DELETE /api/v1/transfers/:id
func (h *HistoryHandler) DeleteTransfer(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transferID, ok, err := getIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.ledgerService.DeleteTransfer(c.Request().Context(), userID, transferID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func pageParams(c echo.Context) (int, int) {
	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := getIntParam(c, "limit", defaultHistoryLimit)
	if limit < 1 || limit > services.MaxHistoryLimit {
		limit = services.MaxHistoryLimit
	}
	return offset, limit
}
