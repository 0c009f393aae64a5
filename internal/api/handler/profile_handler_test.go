package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/luminui/taskboard/internal/core/domain"
)

type stubProfileService struct {
	getFn    func(ctx context.Context, userID string) (*domain.User, error)
	updateFn func(ctx context.Context, userID, name string) (*domain.User, error)
}

func (s *stubProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.getFn(ctx, userID)
}

func (s *stubProfileService) UpdateName(ctx context.Context, userID, name string) (*domain.User, error) {
	return s.updateFn(ctx, userID, name)
}

func TestProfileHandler_Get(t *testing.T) {
	stub := &stubProfileService{
		getFn: func(_ context.Context, userID string) (*domain.User, error) {
			if userID != "user_1" {
				t.Fatalf("expected user_1, got %s", userID)
			}
			return &domain.User{ID: userID, Email: "a@x.com", Name: "A"}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/api/profile", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked: %+v", user)
	}
}

func TestProfileHandler_Get_Missing(t *testing.T) {
	stub := &stubProfileService{
		getFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newAuthedContext(t, http.MethodGet, "/api/profile", "")
	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileHandler_Update(t *testing.T) {
	stub := &stubProfileService{
		updateFn: func(_ context.Context, userID, name string) (*domain.User, error) {
			return &domain.User{ID: userID, Email: "a@x.com", Name: name}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPut, "/api/profile", `{"name":"New Name"}`)
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_Validation(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newAuthedContext(t, http.MethodPut, "/api/profile", `{"name":""}`)
	err := h.Update(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Issues) != 1 || ve.Issues[0].Field != "name" {
		t.Fatalf("expected a single name issue, got %+v", ve.Issues)
	}
}
