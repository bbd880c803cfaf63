package user

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User represents an identity principal. Categories and transactions are
// owned by exactly one user.
type User struct {
	ID           int64     `json:"id"`
	Name         *string   `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateParams contains parameters for registering a new user.
type CreateParams struct {
	Name         *string
	Email        string
	PasswordHash string
}
