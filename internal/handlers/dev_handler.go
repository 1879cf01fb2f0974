package handlers

import (
	"errors"
	"net/http"

	"ledger-bot/internal/dto"
	apperrors "ledger-bot/internal/errors"
	"ledger-bot/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	tokenService services.TokenServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(tokenService services.TokenServiceInterface) *DevHandler {
	return &DevHandler{tokenService: tokenService}
}

// IssueToken mints a bearer token on behalf of a chat user, standing in for
// the chat gateway during local testing
//
// Method: POST /dev/token
// Authentication: None
// Environment: Development only
//
// Success Response: 201 Created
//   - access_token: RS256 signed token
//   - expires_at: Expiry time
//
// Error Responses:
//   - 400: Invalid request body
//   - 503: No private key configured
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	token, expiresAt, err := h.tokenService.GenerateToken(req.ExternalID, req.Username)
	if err != nil {
		if errors.Is(err, services.ErrSigningDisabled) {
			return SendError(c, apperrors.SystemServiceUnavailable, apperrors.WithDetails("Token signing is not configured"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
