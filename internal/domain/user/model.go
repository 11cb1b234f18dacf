package user

import (
	"context"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	// Create inserts u if no user with the same email exists. The insert
	// must be atomic at the store: implementations return ErrAlreadyRegistered
	// on conflict instead of relying on a prior lookup.
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	// SetActive flips the active flag and reports ErrNotFound when no user
	// has that email. Repeated calls with the same value are harmless.
	SetActive(ctx context.Context, email string, active bool) error
}
