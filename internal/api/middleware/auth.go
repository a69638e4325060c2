package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/courseify/course-api/internal/core/service"
)

// TokenVerifier validates a presented token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// Auth authenticates requests against the token authority and injects the
// verified claims into the request context.
//
// Status mapping follows the original API contract: a missing Authorization
// header is 401 (unauthenticated), while a header that is present but carries
// a malformed, forged, or expired token is 403 (forbidden).
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusForbidden, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
