package handlers

import (
	"net/http"

	"ledger-bot/internal/dto"
	"ledger-bot/internal/errors"
	"ledger-bot/internal/services"

	"github.com/labstack/echo/v4"
)

type AliasHandler struct {
	aliasService services.AliasServiceInterface
}

func NewAliasHandler(aliasService services.AliasServiceInterface) *AliasHandler {
	return &AliasHandler{aliasService: aliasService}
}

// CreateAlias handles POST /api/v1/aliases
func (h *AliasHandler) CreateAlias(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAliasRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	alias, err := h.aliasService.CreateAlias(c.Request().Context(), userID, req.Alias, req.Target)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, alias)
}

// ListAliases handles GET /api/v1/aliases
func (h *AliasHandler) ListAliases(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	aliases, err := h.aliasService.ListAliases(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AliasListResponse{Aliases: aliases})
}

// DeleteAlias handles DELETE /api/v1/aliases/:id
func (h *AliasHandler) DeleteAlias(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	aliasID, ok, err := getIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.aliasService.DeleteAlias(c.Request().Context(), userID, aliasID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
