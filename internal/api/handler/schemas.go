package handler

import "github.com/luminui/taskboard/internal/core/domain"

// Request types are the declarative contract of the API: the same length
// bounds and status enumeration as the store schema, expressed once as
// validate tags and enforced uniformly by the echo validator.

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required,max=100"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type updateProfileRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
}

// updateTaskRequest is a partial update: absent fields stay nil and are
// never written to the store.
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
}

// --- Response envelopes ---

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

type taskResponse struct {
	Task *domain.Task `json:"task"`
}

type listTasksResponse struct {
	Items []*domain.Task `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type deleteResponse struct {
	OK bool `json:"ok"`
}
