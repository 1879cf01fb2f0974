package handlers

import (
	"net/http"

	"ledger-bot/internal/dto"
	"ledger-bot/internal/errors"
	"ledger-bot/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CommandHandler feeds chat messages into the ledger
type CommandHandler struct {
	commandService services.CommandServiceInterface
	ledgerService  services.LedgerServiceInterface
}

func NewCommandHandler(commandService services.CommandServiceInterface, ledgerService services.LedgerServiceInterface) *CommandHandler {
	return &CommandHandler{
		commandService: commandService,
		ledgerService:  ledgerService,
	}
}

// HandleCommand records one text command
//
// Method: POST /api/v1/commands
//
// Success Response: 201 Created with the entry or transfer
// Error Responses:
//   - 400: Invalid request body
//   - 422: The command could not be applied; error.message is meant for the chat user
//   - 500: Internal server error
func (h *CommandHandler) HandleCommand(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CommandRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.commandService.HandleCommand(c.Request().Context(), userID, req.Text)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CommandResponse{
		Kind:     string(result.Kind),
		Entry:    result.Entry,
		Transfer: result.Transfer,
	})
}

// CommitDraft records the entry collected by the step-by-step dialog
//
// Method: POST /api/v1/drafts/commit
//
// Success Response: 201 Created with the entry
// Error Responses:
//   - 400: Invalid request body or draft
//   - 422: Amount not recognised, account or category not found
func (h *CommandHandler) CommitDraft(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CommitDraftRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	amount, title, err := services.ParseDraftInput(req.Amount)
	if err != nil {
		return SendServiceError(c, err)
	}

	draft := &services.EntryDraft{
		Kind:       services.DraftKind(req.Kind),
		Amount:     amount,
		Title:      title,
		AccountID:  uuid.MustParse(req.AccountID),
		CategoryID: uuid.MustParse(req.CategoryID),
	}
	if req.SubcategoryID != nil {
		subcategoryID := uuid.MustParse(*req.SubcategoryID)
		draft.SubcategoryID = &subcategoryID
	}

	entry, err := h.ledgerService.CommitDraft(c.Request().Context(), userID, draft)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CommandResponse{
		Kind:  string(services.CommandEntry),
		Entry: entry,
	})
}
