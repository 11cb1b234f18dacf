package weather

import (
	"context"
	"time"
)

type Service struct {
	provider Provider
	repo     Repository
}

func NewService(provider Provider, repo Repository) *Service {
	return &Service{provider: provider, repo: repo}
}

// Fetch performs a single round-trip to the provider. Every call hits the
// network; responses are not cached and failures are not retried.
func (s *Service) Fetch(ctx context.Context, zipCode string) (string, error) {
	return s.provider.FetchByZip(ctx, zipCode)
}

// LogRequest stamps the current server time and persists a new entry.
func (s *Service) LogRequest(ctx context.Context, email, zipCode, weatherDetails string) (*LogEntry, error) {
	e := &LogEntry{
		Email:          email,
		ZipCode:        zipCode,
		WeatherDetails: weatherDetails,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// History filters entries by zip code or email. Empty strings mean "no
// filter"; when both filters are present an entry matching either one is
// included.
func (s *Service) History(ctx context.Context, zipCode, email string) ([]LogEntry, error) {
	var zipPtr, emailPtr *string
	if zipCode != "" {
		zipPtr = &zipCode
	}
	if email != "" {
		emailPtr = &email
	}
	return s.repo.FindByZipOrEmail(ctx, zipPtr, emailPtr)
}
