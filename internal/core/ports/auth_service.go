package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// AuthService authenticates an already-resolved user record. The identity
// resolver middleware fetches the record by email; Login only verifies the
// password and issues a token.
type AuthService interface {
	Login(ctx context.Context, user *domain.User, password string) (string, error)
}
