package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/luminui/taskboard/internal/core/domain"
	"github.com/luminui/taskboard/internal/core/ports"
)

const (
	minPasswordLen = 8
	maxNameLen     = 100
)

// AuthService implements registration, login, and stateless token verification.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, *domain.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", nil, err
	}
	if name == "" || len(name) > maxNameLen {
		return "", nil, domain.NewValidationError(domain.FieldIssue{
			Field: "name", Message: "must be between 1 and 100 characters",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password must look identical to the
		// caller; never surface ErrUserNotFound here.
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Verify checks signature and expiry and returns the asserted user id.
// Validity is self-contained in the token; no store lookup happens.
func (s *AuthService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// validateCredentials applies the shared email/password bounds used by both
// register and login, so malformed input is rejected before any store call.
func validateCredentials(email, password string) error {
	var issues []domain.FieldIssue
	if !strings.Contains(email, "@") || strings.ContainsAny(email, " \t") || len(email) < 3 {
		issues = append(issues, domain.FieldIssue{Field: "email", Message: "must be a valid email"})
	}
	if len(password) < minPasswordLen {
		issues = append(issues, domain.FieldIssue{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(issues) > 0 {
		return domain.NewValidationError(issues...)
	}
	return nil
}
