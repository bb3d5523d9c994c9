package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogging returns a middleware that logs every request with its
// method, path, user ID, status and duration. Client errors log at
// Warn, server errors at Error.
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"user_id", UserID(c), // empty if pre-auth
				"duration_ms", time.Since(start).Milliseconds(),
			}
			switch {
			case status >= http.StatusInternalServerError:
				slog.Error("Request failed", append(attrs, "error", err)...)
			case status >= http.StatusBadRequest:
				slog.Warn("Request rejected", append(attrs, "error", err)...)
			default:
				slog.Info("Request completed", attrs...)
			}

			return err
		}
	}
}
