package auth

import (
	"context"
	"errors"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	// Save fails with ErrUsernameTaken when the username is already stored.
	Save(ctx context.Context, user *User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

// LoginRepository appends to the login history.
type LoginRepository interface {
	Record(ctx context.Context, login *Login) error
}
