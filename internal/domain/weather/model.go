package weather

import (
	"context"
	"time"
)

// LogEntry records one successful weather fetch. Entries are immutable once
// written; the email and zip are stored as free text and are not required to
// reference a registered user.
type LogEntry struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	ZipCode        string    `json:"zipCode"`
	WeatherDetails string    `json:"weatherDetails"`
	Timestamp      time.Time `json:"timestamp"`
}

// Provider abstracts the external weather data source. The returned payload
// is the provider's raw response body, passed through untouched.
type Provider interface {
	FetchByZip(ctx context.Context, zipCode string) (string, error)
}

type Repository interface {
	Insert(ctx context.Context, e *LogEntry) error
	// FindByZipOrEmail returns entries whose zip code or email equals the
	// given filter values. A nil filter is ignored; with both nil every
	// entry is returned.
	FindByZipOrEmail(ctx context.Context, zipCode, email *string) ([]LogEntry, error)
}
