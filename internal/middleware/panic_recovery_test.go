package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledger-bot/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverRequest(t *testing.T, next echo.HandlerFunc) (*httptest.ResponseRecorder, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	assert.NotPanics(t, func() {
		assert.NoError(t, PanicRecovery(logger)(next)(c))
	})
	return rec, &logs
}

func TestPanicRecovery_RecoversWithSystemError(t *testing.T) {
	rec, logs := recoverRequest(t, func(c echo.Context) error {
		panic("nil map write")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	assert.Equal(t, string(errors.SystemInternalError), errorResponse.Error.Code)
	assert.Equal(t, "test-trace-id", errorResponse.Error.TraceID)
	assert.NotContains(t, rec.Body.String(), "nil map write")

	assert.Contains(t, logs.String(), "nil map write")
	assert.Contains(t, logs.String(), "stack_trace")
}

func TestPanicRecovery_ErrorValuePanics(t *testing.T) {
	rec, _ := recoverRequest(t, func(c echo.Context) error {
		panic(assert.AnError)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPanicRecovery_CommittedResponseKept(t *testing.T) {
	rec, logs := recoverRequest(t, func(c echo.Context) error {
		_ = c.NoContent(http.StatusAccepted)
		panic("after write")
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, logs.String(), "after write")
}

func TestPanicRecovery_NormalFlow(t *testing.T) {
	rec, logs := recoverRequest(t, func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"kind": "entry"})
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, logs.String())
}
