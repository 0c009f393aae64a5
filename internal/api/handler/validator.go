package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/luminui/taskboard/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures surface as *domain.ValidationError, which the central error
// handler renders as a 400 with field-level details.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			issues := make([]domain.FieldIssue, 0, len(ve))
			for _, fe := range ve {
				issues = append(issues, fieldIssue(fe))
			}
			return domain.NewValidationError(issues...)
		}
		return err
	}
	return nil
}

// fieldIssue converts a single ValidationError into a structured issue with
// a human-readable message.
func fieldIssue(fe validator.FieldError) domain.FieldIssue {
	field := strings.ToLower(fe.Field())
	issue := domain.FieldIssue{Field: field}

	switch fe.Tag() {
	case "required":
		issue.Message = "is required"
	case "email":
		issue.Message = "must be a valid email"
	case "min":
		issue.Message = fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		issue.Message = fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		issue.Message = fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		issue.Message = fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
	return issue
}
