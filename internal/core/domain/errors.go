package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingUserID      = errors.New("user id not provided")
	ErrMissingEmail       = errors.New("user email not provided")
	ErrRoleExists         = errors.New("role already registered")
)

// ValidationError carries a field-level message for an entity invariant
// violation. It maps to a 400 response with the message exposed as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
