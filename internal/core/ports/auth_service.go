package ports

import (
	"context"

	"github.com/luminui/taskboard/internal/core/domain"
)

// AuthService implements registration, login, and token verification.
type AuthService interface {
	// Register stores a new account and returns a session token alongside
	// the created user.
	Register(ctx context.Context, email, password, name string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Verify checks the token's signature and expiry and returns the user
	// id it asserts. No store lookup is performed.
	Verify(token string) (string, error)
}
