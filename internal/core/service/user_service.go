package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// UserService implements user account management. Writes follow a two-phase
// validation: local field invariants first, then an existence check of every
// referenced role name against the role collection.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher *PasswordHasher
	audit  ports.AuditTrail
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, hasher *PasswordHasher, audit ports.AuditTrail, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, audit: audit, logger: logger}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Age == 0 {
		input.Age = domain.DefaultAge
	}
	input.Email = domain.NormalizeEmail(input.Email)

	if err := s.validateNewUser(ctx, input); err != nil {
		s.reportValidationFailure("users/create", err)
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        input.Email,
		PasswordHash: hash,
		Age:          input.Age,
		Roles:        input.Roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			s.reportValidationFailure("users/create", err)
			return nil, &domain.ValidationError{Field: "email", Message: "email already registered"}
		}
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrMissingUserID
	}
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrMissingUserID
	}
	if input.Age == 0 {
		input.Age = domain.DefaultAge
	}

	if err := s.validateUpdate(ctx, input); err != nil {
		s.reportValidationFailure("users/update", err)
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	return s.users.UpdateByID(ctx, id, ports.UserUpdate{
		Name:         &name,
		PasswordHash: &hash,
		Age:          &input.Age,
		Roles:        input.Roles,
	})
}

func (s *UserService) UpdateRoles(ctx context.Context, id string, roles []string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrMissingUserID
	}

	if err := s.validateRoles(ctx, roles); err != nil {
		s.reportValidationFailure("users/roles", err)
		return nil, err
	}

	return s.users.UpdateByID(ctx, id, ports.UserUpdate{Roles: roles})
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrMissingUserID
	}
	return s.users.DeleteByID(ctx, id)
}

func (s *UserService) validateNewUser(ctx context.Context, input ports.CreateUserInput) error {
	if err := domain.ValidateName(input.Name); err != nil {
		return err
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return err
	}
	if err := domain.ValidateAge(input.Age); err != nil {
		return err
	}
	return s.validateRoles(ctx, input.Roles)
}

func (s *UserService) validateUpdate(ctx context.Context, input ports.UpdateUserInput) error {
	if err := domain.ValidateName(input.Name); err != nil {
		return err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return err
	}
	if err := domain.ValidateAge(input.Age); err != nil {
		return err
	}
	return s.validateRoles(ctx, input.Roles)
}

// validateRoles is the second validation phase: every referenced role name
// must already exist in the role collection.
func (s *UserService) validateRoles(ctx context.Context, roles []string) error {
	if err := domain.ValidateRoleNames(roles); err != nil {
		return err
	}

	missing, err := s.roles.MissingNames(ctx, roles)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &domain.ValidationError{
			Field:   "roles",
			Message: "unknown roles: " + strings.Join(missing, ", "),
		}
	}
	return nil
}

// reportValidationFailure ships the failure to the audit trail. Best effort:
// the trail never blocks and delivery failures are not surfaced.
func (s *UserService) reportValidationFailure(category string, err error) {
	metrics.ValidationFailuresTotal.WithLabelValues(category).Inc()
	s.audit.Record(ports.AuditEntry{
		Category: category,
		Message:  err.Error(),
		At:       time.Now().UTC(),
	})
}
