package service

import (
	"context"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// AuthService verifies credentials of a resolved user record and issues a
// bearer token. Record lookup happens upstream in the identity resolver.
type AuthService struct {
	tokens ports.TokenService
	hasher *PasswordHasher
}

func NewAuthService(tokens ports.TokenService, hasher *PasswordHasher) *AuthService {
	return &AuthService{tokens: tokens, hasher: hasher}
}

func (s *AuthService) Login(_ context.Context, user *domain.User, password string) (string, error) {
	if user == nil || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Roles)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return token, nil
}
