package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"parish-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panic anywhere below the middleware chain into
// a SYSTEM_001 response. A panic mid-import must not take the server down
// with half a statement parsed, so the stack is logged with the trace ID
// and the client gets the standard error envelope.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					slog.Error("recovered from panic",
						"trace_id", traceID,
						"panic", fmt.Sprintf("%v", r),
						"stack", string(debug.Stack()),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
					)

					body := errors.NewErrorResponse(errors.SystemInternalError, traceID)
					if err := c.JSON(http.StatusInternalServerError, body); err != nil {
						slog.Error("failed to write panic response",
							"trace_id", traceID,
							"error", err.Error(),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
