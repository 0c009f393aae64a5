package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/luminui/taskboard/internal/core/domain"
)

func render(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "email already in use"},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, "task not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := render(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if body["error"] != tc.wantMsg {
				t.Fatalf("expected %q, got %v", tc.wantMsg, body["error"])
			}
			if _, ok := body["details"]; ok {
				t.Fatalf("details must be absent for non-validation errors")
			}
		})
	}
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	err := domain.NewValidationError(
		domain.FieldIssue{Field: "email", Message: "must be a valid email"},
		domain.FieldIssue{Field: "password", Message: "must be at least 8 characters"},
	)

	code, body := render(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	details, ok := body["details"].([]any)
	if !ok || len(details) != 2 {
		t.Fatalf("expected two detail entries, got %+v", body)
	}
	first, _ := details[0].(map[string]any)
	if first["field"] != "email" {
		t.Fatalf("unexpected detail: %+v", first)
	}
}

// Wrapped domain errors still map through errors.Is.
func TestErrorHandler_WrappedError(t *testing.T) {
	code, _ := render(t, errors.Join(errors.New("query context"), domain.ErrTaskNotFound))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if body["error"] != "Not Found" {
		t.Fatalf("expected Not Found envelope, got %v", body["error"])
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, body := render(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// The real cause must never leak to the client.
	if body["error"] != "internal server error" {
		t.Fatalf("expected generic message, got %v", body["error"])
	}
}
