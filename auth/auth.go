package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"autivision/data"
)

// ErrInvalidCredentials is the single login failure returned to clients; it
// deliberately does not say which field was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError is a user-facing registration problem, never a system
// fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	minCredentialLen = 4
	maxCredentialLen = 20
)

// Service authenticates users against the credential store. Passwords are
// stored as bcrypt hashes.
type Service struct {
	users *data.UserRepository
}

func NewService(users *data.UserRepository) *Service {
	return &Service{users: users}
}

// Register creates a new account. Duplicate usernames and out-of-range
// field lengths come back as *ValidationError with no record created.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if len(username) < minCredentialLen || len(username) > maxCredentialLen {
		return &ValidationError{Message: fmt.Sprintf("username must be between %d and %d characters", minCredentialLen, maxCredentialLen)}
	}
	if len(password) < minCredentialLen || len(password) > maxCredentialLen {
		return &ValidationError{Message: fmt.Sprintf("password must be between %d and %d characters", minCredentialLen, maxCredentialLen)}
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return &ValidationError{Message: "This username already exists. Please choose a different one."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(ctx, &data.User{Username: username, Password: string(hash)}); err != nil {
		// A concurrent registration can slip past the existence check; the
		// unique index catches it and it is still a user-level outcome.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &ValidationError{Message: "This username already exists. Please choose a different one."}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login verifies credentials and returns the account on success.
func (s *Service) Login(ctx context.Context, username, password string) (*data.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
