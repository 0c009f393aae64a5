package ports

import (
	"context"

	"github.com/luminui/taskboard/internal/core/domain"
)

// TaskFilter carries all query parameters for listing tasks.
// UserID is always set by the service layer; a task is never visible
// outside its owner's scope.
type TaskFilter struct {
	UserID string
	Search string // optional: free-text match against title/description
	Status string // optional: exact status match
	Page   int    // 1-based, normalized by the service
	Limit  int    // rows per page, capped at 100 by the service
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskRepository defines persistence operations for tasks. Update and
// Delete filter by owner and id together, so an ownership mismatch is
// reported as domain.ErrTaskNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// List returns a page of tasks matching filter, newest first, and the
	// total count of matching tasks across all pages.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, int64, error)
	Update(ctx context.Context, userID, taskID string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}
