package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces that the verified role claim matches one of allowedRoles.
// The original system gated admin routes on token validity alone, letting any
// signed token through; requiring the role claim closes that gap.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "forbidden"})
			}
			return next(c)
		}
	}
}
