package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmailTaken signals a registration attempt with an email that is
	// already present in the store (unique index violation).
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials covers every failed login: unknown email and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers missing, malformed, and expired bearer tokens.
	ErrInvalidToken = errors.New("invalid token")

	ErrUserNotFound = errors.New("user not found")

	// ErrTaskNotFound is returned both when a task does not exist and when
	// it exists under a different owner. Callers must never be able to tell
	// the two apart.
	ErrTaskNotFound = errors.New("task not found")
)

// FieldIssue describes a single failed validation constraint.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level issues for a rejected request body.
// The HTTP layer renders Issues as the "details" member of the error envelope.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid input"
	}
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = fmt.Sprintf("%s: %s", issue.Field, issue.Message)
	}
	return strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(issues ...FieldIssue) *ValidationError {
	return &ValidationError{Issues: issues}
}
