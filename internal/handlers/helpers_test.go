package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// newTestContext builds a request context, authenticated when userID is set
func newTestContext(e *echo.Echo, method, path string, body interface{}, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		payload, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID != uuid.Nil {
		c.Set(UserIDContextKey, userID)
	}
	c.Set(TraceIDContextKey, "test-trace")

	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp
}
