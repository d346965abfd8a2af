package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

type stubTokenService struct {
	claims   *ports.Claims
	err      error
	received string
}

func (s *stubTokenService) Issue(string, []string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenService) Verify(token string) (*ports.Claims, error) {
	s.received = token
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func newAuthContext(e *echo.Echo, header string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{claims: &ports.Claims{UserID: "user-1", Roles: []string{"ROLE_GUEST"}}}
	c := newAuthContext(e, "some-token")

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID) != "user-1" {
			t.Fatalf("user id not set")
		}
		roles, _ := c.Get(CtxRoles).([]string)
		if len(roles) != 1 || roles[0] != "ROLE_GUEST" {
			t.Fatalf("roles not set: %v", roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if tokens.received != "some-token" {
		t.Fatalf("token passed to verify: %q", tokens.received)
	}
}

func TestAuth_StripsBearerPrefix(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{claims: &ports.Claims{UserID: "user-1"}}
	c := newAuthContext(e, "Bearer some-token")

	handler := Auth(tokens)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if tokens.received != "some-token" {
		t.Fatalf("bearer prefix not stripped, verify got %q", tokens.received)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{claims: &ports.Claims{}}
	c := newAuthContext(e, "")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	tokens := &stubTokenService{err: domain.ErrInvalidToken}
	c := newAuthContext(e, "not-a-token")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	// Invalid is a different failure category from missing.
	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
