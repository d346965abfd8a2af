package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/domain"
)

// RequireRole enforces that the decoded claims carry the given role. Must
// run after Auth. Absence of the role responds exactly like a missing
// credential: 401 access denied.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(CtxRoles).([]string)
			for _, r := range roles {
				if r == role {
					return next(c)
				}
			}
			metrics.AuthDeniedTotal.WithLabelValues("missing_role").Inc()
			return domain.ErrAccessDenied
		}
	}
}
