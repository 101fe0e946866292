package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tala-app/backend/internal/auth"
	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/observability"
)

// UserService handles account registration and login.
type UserService struct {
	users domain.UserStore
	jwt   *auth.JWTManager
}

// NewUserService creates a user service.
func NewUserService(users domain.UserStore, jwt *auth.JWTManager) *UserService {
	return &UserService{users: users, jwt: jwt}
}

// Register creates a new account. A taken username surfaces as
// domain.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", domain.ErrInvalidCredentials)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return nil, err
	}

	observability.FromContext(ctx).Info("user registered",
		observability.Int64("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues an access token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	observability.FromContext(ctx).Info("user logged in",
		observability.Int64("user_id", user.ID))
	return token, user, nil
}
