package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"ledger-bot/internal/errors"
	"ledger-bot/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panic in a handler into a SYSTEM_001 response. A
// panic inside a ledger transaction has already rolled the transaction back
// by the time it reaches here.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				logger.Error("Panic recovered",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprint(r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}
				err = handlers.SendError(c, errors.SystemInternalError)
			}()

			return next(c)
		}
	}
}
