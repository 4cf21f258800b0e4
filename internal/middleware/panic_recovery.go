package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"finchat/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// PanicRecovery is a middleware that recovers from panics and returns a
// standardized error response, so a single bad message can never take down
// the service process.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					log.Error().
						Str("trace_id", traceID).
						Str("panic", fmt.Sprintf("%v", r)).
						Str("path", c.Request().URL.Path).
						Str("method", c.Request().Method).
						Bytes("stack_trace", debug.Stack()).
						Msg("panic recovered")

					errorResponse := errors.NewErrorResponse(
						errors.SystemInternalError,
						traceID,
					)

					if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
						log.Error().
							Str("trace_id", traceID).
							Err(err).
							Msg("failed to send panic recovery response")
					}
				}
			}()

			return next(c)
		}
	}
}
