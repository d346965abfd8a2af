package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// Context keys set by the middleware in this package.
const (
	CtxUserID     = "user_id"
	CtxRoles      = "roles"
	CtxTargetUser = "target_user"
)

// Auth is the authorization gate. It extracts the bearer token from the
// Authorization header, verifies it, and injects the decoded claims into
// the request context.
//
// The wire contract is the raw token (Authorization: <token>); a "Bearer "
// prefix is tolerated. A missing header is a stricter failure (401 access
// denied) than a present-but-unverifiable token (400 invalid token). The
// two categories are distinct in the API contract and must stay that way.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.AuthDeniedTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrAccessDenied
			}

			raw := strings.TrimSpace(header)
			if rest, ok := strings.CutPrefix(raw, "Bearer "); ok {
				raw = strings.TrimSpace(rest)
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.AuthDeniedTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRoles, claims.Roles)

			return next(c)
		}
	}
}
