package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserHandler(t *testing.T) (*UserHandler, *service_mocks.MockUserServiceInterface, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := service_mocks.NewMockUserServiceInterface(ctrl)
	return NewUserHandler(mockService), mockService, echo.New()
}

func TestUserHandler_GetMe(t *testing.T) {
	handler, mockService, e := setupUserHandler(t)
	userID := uuid.New()
	username := gofakeit.Username()

	mockService.EXPECT().GetUser(gomock.Any(), userID).
		Return(&models.User{ID: userID, ExternalID: 1001, Username: &username}, nil)

	c, rec := newTestContext(e, http.MethodGet, "/api/v1/me", nil, userID)

	require.NoError(t, handler.GetMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(1001), user.ExternalID)
	require.NotNil(t, user.Username)
	assert.Equal(t, username, *user.Username)
}

func TestUserHandler_GetMe_NotFound(t *testing.T) {
	handler, mockService, e := setupUserHandler(t)
	userID := uuid.New()

	mockService.EXPECT().GetUser(gomock.Any(), userID).
		Return(nil, ledgererrors.NewLedgerError(ledgererrors.UserNotFound))

	c, rec := newTestContext(e, http.MethodGet, "/api/v1/me", nil, userID)

	require.NoError(t, handler.GetMe(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_PurgeMe(t *testing.T) {
	handler, mockService, e := setupUserHandler(t)
	userID := uuid.New()

	mockService.EXPECT().PurgeUser(gomock.Any(), userID).Return(nil)

	c, rec := newTestContext(e, http.MethodDelete, "/api/v1/me", nil, userID)

	require.NoError(t, handler.PurgeMe(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUserHandler_PurgeMe_DatabaseFailure(t *testing.T) {
	handler, mockService, e := setupUserHandler(t)
	userID := uuid.New()

	mockService.EXPECT().PurgeUser(gomock.Any(), userID).Return(errors.New("connection reset"))

	c, rec := newTestContext(e, http.MethodDelete, "/api/v1/me", nil, userID)

	require.NoError(t, handler.PurgeMe(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
