package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// RoleRepository defines persistence for role definitions.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	// MissingNames returns the subset of names with no matching role record.
	MissingNames(ctx context.Context, names []string) ([]string, error)
}
