package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminui/taskboard/internal/core/domain"
	"github.com/luminui/taskboard/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// TaskService implements the per-user task operations. Every repository call
// carries the owner's id, so cross-user access is impossible by construction.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// List returns one page of the user's tasks, newest first. Out-of-range
// page/limit values fall back to defaults rather than erroring.
func (s *TaskService) List(ctx context.Context, userID string, input ports.ListTasksInput) (*ports.ListTasksResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	items, total, err := s.repo.List(ctx, ports.TaskFilter{
		UserID: userID,
		Search: input.Search,
		Status: input.Status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListTasksResult{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *TaskService) Create(ctx context.Context, userID string, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.NewValidationError(domain.FieldIssue{
			Field: "title", Message: "is required",
		})
	}

	status := domain.TaskStatus(input.Status)
	if input.Status == "" {
		status = domain.StatusTodo
	}
	if !status.Valid() {
		return nil, domain.NewValidationError(domain.FieldIssue{
			Field: "status", Message: "must be one of: todo in_progress done",
		})
	}

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("user_id", userID).Msg("task created")
	return created, nil
}

// Update applies only the supplied fields. Any status may be set directly;
// transitions are unrestricted in both directions.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
	patch := ports.TaskPatch{Description: input.Description}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.NewValidationError(domain.FieldIssue{
				Field: "title", Message: "must not be empty",
			})
		}
		patch.Title = input.Title
	}
	if input.Status != nil {
		status := domain.TaskStatus(*input.Status)
		if !status.Valid() {
			return nil, domain.NewValidationError(domain.FieldIssue{
				Field: "status", Message: "must be one of: todo in_progress done",
			})
		}
		patch.Status = &status
	}

	return s.repo.Update(ctx, userID, taskID, patch)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if err := s.repo.Delete(ctx, userID, taskID); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", taskID).Str("user_id", userID).Msg("task deleted")
	return nil
}
