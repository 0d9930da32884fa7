package user

import (
	"context"
	"errors"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

type Repository interface {
	// Create fails with ErrUsernameTaken when the username is in use.
	Create(ctx context.Context, u *User) error
	// GetByID and GetByUsername return ErrUserNotFound when absent.
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Update stores the mutable fields of u; ErrUserNotFound when absent.
	Update(ctx context.Context, u *User) error
}
