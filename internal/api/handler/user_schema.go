package handler

import (
	"time"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// messageResponse is the standard envelope for message-only responses.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type createUserRequest struct {
	Name     string   `json:"name"     validate:"required,min=6,max=255"`
	Email    string   `json:"email"    validate:"required,email,max=255"`
	Password string   `json:"password" validate:"required,min=7,max=1024"`
	Age      int      `json:"age"      validate:"omitempty,gt=0"`
	Roles    []string `json:"roles"    validate:"required,min=1,dive,startswith=ROLE_"`
}

// updateUserRequest carries the only fields a full update may touch.
// Payloads with any other field are rejected before reaching the service.
type updateUserRequest struct {
	Name     string   `json:"name"     validate:"required,min=6,max=255"`
	Password string   `json:"password" validate:"required,min=7,max=1024"`
	Age      int      `json:"age"      validate:"omitempty,gt=0"`
	Roles    []string `json:"roles"    validate:"required,min=1,dive,startswith=ROLE_"`
}

type patchRolesRequest struct {
	Roles []string `json:"roles"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---
// These are intentionally separate from domain types so the JSON contract
// is not coupled to internal service changes. The password hash never
// appears in any response.

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type loginDetails struct {
	Token string `json:"token"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Details loginDetails `json:"details"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}
