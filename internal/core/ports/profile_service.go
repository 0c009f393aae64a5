package ports

import (
	"context"

	"github.com/luminui/taskboard/internal/core/domain"
)

// ProfileService exposes the authenticated user's own record.
// Email is immutable through this interface.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	UpdateName(ctx context.Context, userID, name string) (*domain.User, error)
}
