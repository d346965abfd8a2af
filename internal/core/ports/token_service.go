package ports

import "time"

// Claims is the decoded identity carried by a bearer token.
type Claims struct {
	UserID   string
	Roles    []string
	IssuedAt time.Time
}

// HasRole reports whether the claim's role set contains name.
func (c *Claims) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// TokenService issues and verifies signed bearer tokens. Verify returns
// domain.ErrInvalidToken for any token that fails signature or payload
// checks.
type TokenService interface {
	Issue(userID string, roles []string) (string, error)
	Verify(token string) (*Claims, error)
}
