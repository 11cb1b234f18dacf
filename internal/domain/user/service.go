package user

import (
	"context"
	"errors"
)

var (
	ErrAlreadyRegistered = errors.New("user already registered")
	ErrNotFound          = errors.New("user not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new active user. Duplicate detection happens inside the
// repository's conditional insert, so concurrent registrations with the same
// email cannot both succeed.
func (s *Service) Register(ctx context.Context, email string) (*User, error) {
	if email == "" {
		return nil, errors.New("email required")
	}

	u := &User{
		Email:  email,
		Active: true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// GetByEmail returns nil without an error when no user has that email;
// absence is an expected outcome for callers, not a failure.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Activate(ctx context.Context, email string) error {
	return s.repo.SetActive(ctx, email, true)
}

func (s *Service) Deactivate(ctx context.Context, email string) error {
	return s.repo.SetActive(ctx, email, false)
}
