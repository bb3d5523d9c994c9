// Package middleware provides the HTTP middleware stack: bearer-token
// authentication, request logging and prometheus metrics.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"noticeboard/internal/auth"
)

const (
	// userIDKey is the echo context key for the authenticated user ID.
	userIDKey = "user_id"
	// usernameKey is the echo context key for the authenticated username.
	usernameKey = "username"
)

// UserID extracts the authenticated user ID from the request context.
// Returns empty string if not found.
func UserID(c echo.Context) string {
	userID, _ := c.Get(userIDKey).(string)
	return userID
}

// Username extracts the authenticated username from the request context.
// Returns empty string if not found.
func Username(c echo.Context) string {
	username, _ := c.Get(usernameKey).(string)
	return username
}

// RequireAuth returns a middleware that validates JWT bearer tokens.
// It extracts the token from the Authorization header, validates it,
// and adds the user ID and username to the request context.
func RequireAuth(jwtManager *auth.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrMissingToken.Error())
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken.Error())
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(userIDKey, claims.UserID)
			c.Set(usernameKey, claims.Username)
			return next(c)
		}
	}
}
