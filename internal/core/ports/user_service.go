package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted on registration.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Roles    []string
}

// UpdateUserInput carries the fields accepted on a full update. Email is
// deliberately absent: it is immutable after registration.
type UpdateUserInput struct {
	Name     string
	Password string
	Age      int
	Roles    []string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	UpdateRoles(ctx context.Context, id string, roles []string) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
