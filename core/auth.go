package core

import (
	"context"
	"errors"
)

var (
	// ErrMissingCredentials is returned when username or password is absent.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrDuplicateUser is returned when a registration insert fails; the
	// users table carries no constraint other than username uniqueness.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrUserNotFound is returned when no row matches the login username.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword is returned when the password does not match the stored hash.
	ErrWrongPassword = errors.New("incorrect password")
)

// AuthService defines the registration and login flows.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}
