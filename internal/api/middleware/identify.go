package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// IdentifyByID resolves the user referenced by the :id path parameter and
// attaches it to the request context. Fails closed: missing id is a 400,
// unknown id a 404, and the wrapped handler never runs on either.
func IdentifyByID(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Param("id")
			if id == "" {
				return domain.ErrMissingUserID
			}

			user, err := users.FindByID(c.Request().Context(), id)
			if err != nil {
				return err
			}

			c.Set(CtxTargetUser, user)
			return next(c)
		}
	}
}

// IdentifyByEmail resolves the user referenced by the email field of the
// request body and attaches it to the context. The body is restored after
// peeking so downstream handlers can bind it again.
func IdentifyByEmail(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return err
			}
			c.Request().Body = io.NopCloser(bytes.NewReader(body))

			var payload struct {
				Email string `json:"email"`
			}
			_ = json.Unmarshal(body, &payload)
			if payload.Email == "" {
				return domain.ErrMissingEmail
			}

			user, err := users.FindByEmail(c.Request().Context(), domain.NormalizeEmail(payload.Email))
			if err != nil {
				return err
			}

			c.Set(CtxTargetUser, user)
			return next(c)
		}
	}
}

// TargetUser returns the record attached by an identity resolver, or nil.
func TargetUser(c echo.Context) *domain.User {
	user, _ := c.Get(CtxTargetUser).(*domain.User)
	return user
}
