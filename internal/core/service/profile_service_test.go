package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminui/taskboard/internal/core/domain"
)

func TestProfileService_Get(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, "secret", time.Hour)
	svc := NewProfileService(repo, zerolog.Nop())

	_, created, err := auth.Register(context.Background(), "alice@example.com", "longenough", "Alice")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if user.Email != "alice@example.com" || user.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestProfileService_Get_Missing(t *testing.T) {
	svc := NewProfileService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileService_UpdateName(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, "secret", time.Hour)
	svc := NewProfileService(repo, zerolog.Nop())

	_, created, err := auth.Register(context.Background(), "bob@example.com", "longenough", "Bob")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.UpdateName(context.Background(), created.ID, "Robert")
	if err != nil {
		t.Fatalf("UpdateName returned error: %v", err)
	}
	if user.Name != "Robert" {
		t.Fatalf("expected name Robert, got %s", user.Name)
	}
	// Email is immutable through this path.
	if user.Email != "bob@example.com" {
		t.Fatalf("email changed: %s", user.Email)
	}
}

func TestProfileService_UpdateName_Validation(t *testing.T) {
	svc := NewProfileService(newStubUserRepo(), zerolog.Nop())

	var ve *domain.ValidationError
	if _, err := svc.UpdateName(context.Background(), "u", ""); !errors.As(err, &ve) {
		t.Fatalf("empty name: expected ValidationError, got %v", err)
	}
	if _, err := svc.UpdateName(context.Background(), "u", strings.Repeat("x", 101)); !errors.As(err, &ve) {
		t.Fatalf("long name: expected ValidationError, got %v", err)
	}
}
