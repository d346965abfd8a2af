package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

type RoleService interface {
	// Create registers a new role. Returns domain.ErrRoleExists when the
	// name is already present.
	Create(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
}
