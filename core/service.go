package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// storeTimeout bounds every store call made by the auth flows.
const storeTimeout = 3 * time.Second

// RepositoryAuthService implements AuthService over a UserRepository,
// a PasswordHasher, and a TokenIssuer.
type RepositoryAuthService struct {
	users  UserRepository
	hasher *PasswordHasher
	tokens *TokenIssuer
}

func NewRepositoryAuthService(users UserRepository, hasher *PasswordHasher, tokens *TokenIssuer) *RepositoryAuthService {
	return &RepositoryAuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register hashes the password and stores the new credential pair.
func (s *RepositoryAuthService) Register(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrMissingCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if _, err := s.users.Create(ctx, username, hash); err != nil {
		// Username uniqueness is the table's only constraint; every insert
		// failure is reported as a duplicate.
		return ErrDuplicateUser
	}
	return nil
}

// Login verifies the credentials and returns a signed token on success.
func (s *RepositoryAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return "", ErrWrongPassword
	}

	token, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
