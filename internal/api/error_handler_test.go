package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/accounts-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec.Code, resp.Message
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"access denied", domain.ErrAccessDenied, http.StatusUnauthorized, "access denied"},
		{"invalid token", domain.ErrInvalidToken, http.StatusBadRequest, "authentication failed: invalid token"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
		{"missing user id", domain.ErrMissingUserID, http.StatusBadRequest, "user id not provided"},
		{"missing email", domain.ErrMissingEmail, http.StatusBadRequest, "user email not provided"},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "email already registered"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"role not found", domain.ErrRoleNotFound, http.StatusNotFound, "role not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, code)
			}
			if msg != tt.message {
				t.Fatalf("expected %q, got %q", tt.message, msg)
			}
		})
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	code, msg := renderError(t, &domain.ValidationError{Field: "name", Message: "too short"})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "name: too short" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "invalid payload" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
