package domain

import (
	"net/mail"
	"strings"
	"time"
)

const (
	// DefaultAge is applied when a user is created without an age.
	DefaultAge = 1

	minNameLen     = 6
	maxNameLen     = 255
	minPasswordLen = 7
	maxPasswordLen = 1024
)

// User models an account in the system. Roles is a denormalized copy of
// role names; referential integrity against the role collection is enforced
// at write time, not by the store.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          int       `json:"age"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail lowercases and trims an email address. Emails are stored
// and looked up in normalized form only.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateName enforces the display-name length bounds.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen || len(name) > maxNameLen {
		return &ValidationError{Field: "name", Message: "name must be between 6 and 255 characters"}
	}
	return nil
}

// ValidateEmail checks format and length of an already-normalized email.
func ValidateEmail(email string) error {
	if len(email) < minNameLen || len(email) > maxNameLen {
		return &ValidationError{Field: "email", Message: "email must be between 6 and 255 characters"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "email must be a valid address"}
	}
	return nil
}

// ValidatePassword checks the plaintext password before hashing. The
// literal substrings "password" and "senha" are rejected case-insensitively.
func ValidatePassword(plain string) error {
	plain = strings.TrimSpace(plain)
	if len(plain) < minPasswordLen || len(plain) > maxPasswordLen {
		return &ValidationError{Field: "password", Message: "password must be between 7 and 1024 characters"}
	}
	lower := strings.ToLower(plain)
	if strings.Contains(lower, "password") || strings.Contains(lower, "senha") {
		return &ValidationError{Field: "password", Message: "password must not contain the words password or senha"}
	}
	return nil
}

// ValidateAge rejects non-positive ages. Zero means "not provided" and is
// defaulted by the service before this check runs.
func ValidateAge(age int) error {
	if age <= 0 {
		return &ValidationError{Field: "age", Message: "age must be greater than zero"}
	}
	return nil
}

// ValidateRoleNames enforces the local part of the roles invariant: the
// list must be non-empty with no blank entries. Existence against the role
// store is a separate step owned by the user service.
func ValidateRoleNames(roles []string) error {
	if len(roles) == 0 {
		return &ValidationError{Field: "roles", Message: "roles is a required parameter"}
	}
	for _, r := range roles {
		if strings.TrimSpace(r) == "" {
			return &ValidationError{Field: "roles", Message: "role names must not be empty"}
		}
	}
	return nil
}
