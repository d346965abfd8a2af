package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

type stubUserService struct {
	created *ports.CreateUserInput
	updated *ports.UpdateUserInput
	roles   []string
	user    *domain.User
	users   []domain.User
	err     error
}

func (s *stubUserService) Create(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
	s.created = &input
	return s.user, s.err
}

func (s *stubUserService) List(context.Context) ([]domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) GetByID(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Update(_ context.Context, _ string, input ports.UpdateUserInput) (*domain.User, error) {
	s.updated = &input
	return s.user, s.err
}

func (s *stubUserService) UpdateRoles(_ context.Context, _ string, roles []string) (*domain.User, error) {
	s.roles = roles
	return s.user, s.err
}

func (s *stubUserService) Delete(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func fixtureUser() *domain.User {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:           "user-1",
		Name:         "Erin Example",
		Email:        "erin@example.com",
		PasswordHash: "$2a$10$notarealhash",
		Age:          30,
		Roles:        []string{"ROLE_GUEST"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Create_Success(t *testing.T) {
	svc := &stubUserService{user: fixtureUser()}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/users/create",
		`{"name":"Erin Example","email":"erin@example.com","password":"s3cretpw","age":30,"roles":["ROLE_GUEST"]}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.created == nil || svc.created.Email != "erin@example.com" {
		t.Fatalf("service not called with input: %+v", svc.created)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["id"] != "user-1" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if _, ok := resp["password"]; ok {
		t.Fatalf("password leaked into response")
	}
}

func TestUserHandler_Create_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"abc","email":"erin@example.com","password":"s3cretpw","roles":["ROLE_GUEST"]}`},
		{"bad email", `{"name":"Erin Example","email":"not-an-email","password":"s3cretpw","roles":["ROLE_GUEST"]}`},
		{"short password", `{"name":"Erin Example","email":"erin@example.com","password":"abc","roles":["ROLE_GUEST"]}`},
		{"no roles", `{"name":"Erin Example","email":"erin@example.com","password":"s3cretpw","roles":[]}`},
		{"bad role prefix", `{"name":"Erin Example","email":"erin@example.com","password":"s3cretpw","roles":["ADMIN"]}`},
		{"negative age", `{"name":"Erin Example","email":"erin@example.com","password":"s3cretpw","age":-3,"roles":["ROLE_GUEST"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubUserService{user: fixtureUser()}
			h := NewUserHandler(svc)
			c, _ := newJSONContext(t, http.MethodPost, "/users/create", tt.body)

			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
			if svc.created != nil {
				t.Fatalf("service called despite invalid payload")
			}
		})
	}
}

func TestUserHandler_List(t *testing.T) {
	svc := &stubUserService{users: []domain.User{*fixtureUser()}}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/users", "")

	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0]["email"] != "erin@example.com" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestUserHandler_Update_RejectsUnknownFields(t *testing.T) {
	svc := &stubUserService{user: fixtureUser()}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(t, http.MethodPut, "/users/user-1",
		`{"name":"Erin Example","password":"s3cretpw","roles":["ROLE_GUEST"],"email":"new@example.com"}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if he.Message != "fields not allowed for update" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
	if svc.updated != nil {
		t.Fatalf("service called despite forbidden field")
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	svc := &stubUserService{user: fixtureUser()}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(t, http.MethodPut, "/users/user-1",
		`{"name":"Erin Updated","password":"news3cret","age":31,"roles":["ROLE_ADMIN"]}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updated == nil || svc.updated.Name != "Erin Updated" || svc.updated.Age != 31 {
		t.Fatalf("service not called with input: %+v", svc.updated)
	}
}

func TestUserHandler_UpdateRoles_MissingParameters(t *testing.T) {
	svc := &stubUserService{user: fixtureUser()}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(t, http.MethodPatch, "/users/roles/user-1", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	err := h.UpdateRoles(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if he.Message != "missing parameters" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestUserHandler_UpdateRoles_Success(t *testing.T) {
	svc := &stubUserService{user: fixtureUser()}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(t, http.MethodPatch, "/users/roles/user-1", `{"roles":["ROLE_ADMIN"]}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	if err := h.UpdateRoles(c); err != nil {
		t.Fatalf("update roles failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.roles) != 1 || svc.roles[0] != "ROLE_ADMIN" {
		t.Fatalf("service not called with roles: %v", svc.roles)
	}
}

func TestUserHandler_Delete_PropagatesNotFound(t *testing.T) {
	svc := &stubUserService{err: domain.ErrUserNotFound}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(t, http.MethodDelete, "/users/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
