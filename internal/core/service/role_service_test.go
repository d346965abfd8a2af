package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/userhub/accounts-api/internal/core/domain"
)

func TestRoleService_Create_Success(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	role, err := svc.Create(context.Background(), "ROLE_TEST")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if role.Name != "ROLE_TEST" {
		t.Fatalf("unexpected name: %s", role.Name)
	}
}

func TestRoleService_Create_DefaultsToGuest(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	role, err := svc.Create(context.Background(), "  ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if role.Name != domain.RoleGuest {
		t.Fatalf("expected %s, got %s", domain.RoleGuest, role.Name)
	}
}

func TestRoleService_Create_InvalidPrefix(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), "ADMIN")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "name" {
		t.Fatalf("expected name validation error, got %v", err)
	}
}

func TestRoleService_Create_AlreadyExists(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo("ROLE_TEST"), zerolog.Nop())

	role, err := svc.Create(context.Background(), "ROLE_TEST")
	if !errors.Is(err, domain.ErrRoleExists) {
		t.Fatalf("expected ErrRoleExists, got %v", err)
	}
	if role == nil || role.Name != "ROLE_TEST" {
		t.Fatalf("expected existing role back, got %+v", role)
	}
}

func TestRoleService_List(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo("ROLE_ADMIN", "ROLE_GUEST"), zerolog.Nop())

	roles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
}
