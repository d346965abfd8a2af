package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// UserUpdate is a partial update applied with findOneAndUpdate semantics.
// Nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	PasswordHash *string
	Age          *int
	Roles        []string
}

// UserRepository defines persistence for user accounts. Implementations
// return domain.ErrUserNotFound for missing records and domain.ErrEmailTaken
// when the unique email index is violated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateByID(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) (*domain.User, error)
}
