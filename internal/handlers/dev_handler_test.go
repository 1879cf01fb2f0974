package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"ledger-bot/internal/config"
	"ledger-bot/internal/dto"
	"ledger-bot/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevTokenService(t *testing.T, withPrivateKey bool) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)

	cfg := &config.JWTConfig{
		TokenDuration: time.Hour,
		PublicKey:     publicKey,
		Issuer:        "ledger-bot-test",
	}
	if withPrivateKey {
		cfg.PrivateKey = privateKey
	}
	return services.NewTokenService(cfg)
}

func TestDevHandler_IssueToken(t *testing.T) {
	tokenService := newDevTokenService(t, true)
	handler := NewDevHandler(tokenService)
	e := echo.New()
	e.Validator = NewValidator()

	username := gofakeit.Username()
	c, rec := newTestContext(e, http.MethodPost, "/dev/token",
		dto.DevTokenRequest{ExternalID: 1001, Username: username}, uuid.Nil)

	require.NoError(t, handler.IssueToken(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	claims, err := tokenService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	externalID, err := claims.ExternalID()
	require.NoError(t, err)
	assert.Equal(t, int64(1001), externalID)
	assert.Equal(t, username, claims.Username)
}

func TestDevHandler_IssueToken_SigningDisabled(t *testing.T) {
	handler := NewDevHandler(newDevTokenService(t, false))
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := newTestContext(e, http.MethodPost, "/dev/token", dto.DevTokenRequest{ExternalID: 1001}, uuid.Nil)

	require.NoError(t, handler.IssueToken(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDevHandler_IssueToken_InvalidExternalID(t *testing.T) {
	handler := NewDevHandler(newDevTokenService(t, true))
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := newTestContext(e, http.MethodPost, "/dev/token", dto.DevTokenRequest{ExternalID: 0}, uuid.Nil)

	require.NoError(t, handler.IssueToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
