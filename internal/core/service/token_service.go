package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// tokenClaims is the wire shape of the JWT payload.
type tokenClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// secret is injected once at construction and never changes. Tokens carry
// an expiry; the system this replaces issued non-expiring tokens, and the
// TTL here is the documented fix for that gap.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(userID string, roles []string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Subject:   userID,
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and decodes the claims. Every failure mode
// (bad signature, malformed payload, expired token) collapses into
// domain.ErrInvalidToken so callers never branch on parser internals.
func (s *TokenService) Verify(token string) (*ports.Claims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	out := &ports.Claims{UserID: claims.UserID, Roles: claims.Roles}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
