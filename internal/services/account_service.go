package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JohnBalawejder/watcha/internal/auth"
	"github.com/JohnBalawejder/watcha/internal/models"
	"github.com/JohnBalawejder/watcha/internal/repository"

	"github.com/sirupsen/logrus"
)

type AccountService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type accountService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
}

func NewAccountService(users repository.UserRepository, tokens *auth.TokenManager, logger *logrus.Logger) AccountService {
	return &accountService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new account. Uniqueness is enforced by the insert
// itself, so two concurrent registrations with the same username resolve to
// exactly one success.
func (s *accountService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.WithField("username", username).Info("User registered")
	return user, nil
}

// Login verifies the credentials and returns a signed bearer token for the
// account. Unknown username and wrong password are indistinguishable to the
// caller.
func (s *accountService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
