package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// RoleService manages role definitions.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.RoleGuest
	}

	if err := domain.ValidateRoleName(name); err != nil {
		return nil, err
	}

	existing, err := s.roles.FindByName(ctx, name)
	if err != nil && !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, domain.ErrRoleExists
	}

	created, err := s.roles.Create(ctx, &domain.Role{Name: name})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role", name).Msg("role created")
	return created, nil
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.roles.FindAll(ctx)
}
