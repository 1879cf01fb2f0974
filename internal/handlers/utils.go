package handlers

import (
	"fmt"

	"ledger-bot/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

const (
	// UserIDContextKey holds the internal id of the authenticated user
	UserIDContextKey = "user_id"
	// ExternalIDContextKey holds the chat user id from the token subject
	ExternalIDContextKey = "external_id"
)

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get(UserIDContextKey)
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// getIDParam parses a UUID path parameter, writing the error response when
// it is malformed
func getIDParam(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.UUID{}, false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid "+name))
	}
	return id, true, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// bindAndValidate decodes and validates a request body, writing the error
// response on failure
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return true, nil
}
