package ports

import (
	"context"

	"github.com/luminui/taskboard/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email is already present (enforced by a unique index).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateName changes the display name and returns the updated record.
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
}
