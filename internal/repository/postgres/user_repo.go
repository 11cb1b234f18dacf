package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weather-api/internal/domain/user"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create relies on the unique email constraint: ON CONFLICT DO NOTHING makes
// the insert atomic, so two concurrent registrations cannot both succeed.
func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	query := `
        INSERT INTO users (email, active)
        VALUES ($1, $2)
        ON CONFLICT (email) DO NOTHING
        RETURNING id, created_at
    `
	err := r.db.QueryRowContext(ctx, query, u.Email, u.Active).
		Scan(&u.ID, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return user.ErrAlreadyRegistered
	}
	return err
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
        SELECT id, email, active, created_at
        FROM users WHERE email = $1
    `
	u := &user.User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.Active, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) SetActive(ctx context.Context, email string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET active = $1 WHERE email = $2`, active, email)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}
