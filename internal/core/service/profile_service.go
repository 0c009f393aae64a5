package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/luminui/taskboard/internal/core/domain"
	"github.com/luminui/taskboard/internal/core/ports"
)

// ProfileService exposes the authenticated user's own record.
type ProfileService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

// Get returns the user's public record. A missing record should not occur
// for a valid token but propagates as ErrUserNotFound when it does.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateName changes the display name. Email is immutable through this path.
func (s *ProfileService) UpdateName(ctx context.Context, userID, name string) (*domain.User, error) {
	if name == "" || len(name) > maxNameLen {
		return nil, domain.NewValidationError(domain.FieldIssue{
			Field: "name", Message: "must be between 1 and 100 characters",
		})
	}

	user, err := s.repo.UpdateName(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}
