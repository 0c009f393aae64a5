package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/luminui/taskboard/internal/core/domain"
)

type stubVerifier struct {
	userID string
	err    error
}

func (v *stubVerifier) Verify(string) (string, error) {
	return v.userID, v.err
}

func newAuthContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	c, rec := newAuthContext(t, "Bearer sometoken")

	called := false
	mw := Auth(&stubVerifier{userID: "user_1"})
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user_1" {
			t.Fatalf("user_id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	c, _ := newAuthContext(t, "")

	mw := Auth(&stubVerifier{userID: "user_1"})
	err := mw(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	c, _ := newAuthContext(t, "Basic dXNlcjpwYXNz")

	mw := Auth(&stubVerifier{userID: "user_1"})
	err := mw(func(c echo.Context) error { return nil })(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	c, _ := newAuthContext(t, "Bearer expired-or-garbage")

	mw := Auth(&stubVerifier{err: domain.ErrInvalidToken})
	err := mw(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

// The scheme comparison is case-insensitive ("bearer" is accepted).
func TestAuthMiddleware_LowercaseScheme(t *testing.T) {
	c, rec := newAuthContext(t, "bearer sometoken")

	mw := Auth(&stubVerifier{userID: "user_2"})
	if err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
