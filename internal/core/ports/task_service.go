package ports

import (
	"context"

	"github.com/luminui/taskboard/internal/core/domain"
)

// ListTasksInput carries the query parameters of the list endpoint.
// Zero values for Page/Limit mean "use defaults".
type ListTasksInput struct {
	Search string
	Status string
	Page   int
	Limit  int
}

// ListTasksResult is one page of tasks plus the resolved pagination values.
type ListTasksResult struct {
	Items []*domain.Task
	Total int64
	Page  int
	Limit int
}

// CreateTaskInput carries the fields of a new task. Description defaults to
// "" and Status to "todo" when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
}

// UpdateTaskInput is a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService defines use-case operations for tasks. Every operation is
// scoped to the authenticated user's id.
type TaskService interface {
	List(ctx context.Context, userID string, input ListTasksInput) (*ListTasksResult, error)
	Create(ctx context.Context, userID string, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}
