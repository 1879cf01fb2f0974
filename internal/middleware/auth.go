package middleware

import (
	"errors"

	apperrors "ledger-bot/internal/errors"
	"ledger-bot/internal/handlers"
	"ledger-bot/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid bearer token and
// resolves the chat user it was issued for. The user is registered on
// first contact.
func RequireAuth(tokenService services.TokenServiceInterface, userService services.UserServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			externalID, err := claims.ExternalID()
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithDetails("Invalid subject in token"))
			}

			user, err := userService.EnsureUser(c.Request().Context(), externalID, claims.Username)
			if err != nil {
				return handlers.SendServiceError(c, err)
			}

			c.Set(handlers.UserIDContextKey, user.ID)
			c.Set(handlers.ExternalIDContextKey, externalID)

			return next(c)
		}
	}
}
