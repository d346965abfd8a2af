package domain

import "strings"

const (
	// RolePrefix is mandatory on every role name.
	RolePrefix = "ROLE_"

	// RoleAdmin gates all user and role management routes.
	RoleAdmin = "ROLE_ADMIN"
	// RoleGuest is the default name when a role is created without one.
	RoleGuest = "ROLE_GUEST"
)

// Role is a named permission tag, e.g. ROLE_ADMIN.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ValidateRoleName rejects names not starting with the ROLE_ prefix.
func ValidateRoleName(name string) error {
	if !strings.HasPrefix(name, RolePrefix) {
		return &ValidationError{Field: "name", Message: "role names must start with ROLE_, example: ROLE_TEST"}
	}
	return nil
}
