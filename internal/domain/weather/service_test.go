package weather

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type stubProvider struct {
	payload string
	err     error
	calls   int
}

func (p *stubProvider) FetchByZip(ctx context.Context, zipCode string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.payload, nil
}

type memoryLogRepo struct {
	mu      sync.Mutex
	entries []LogEntry
	nextID  int64
}

func newMemoryLogRepo() *memoryLogRepo {
	return &memoryLogRepo{nextID: 1}
}

func (r *memoryLogRepo) Insert(ctx context.Context, e *LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, *e)
	return nil
}

func (r *memoryLogRepo) FindByZipOrEmail(ctx context.Context, zipCode, email *string) ([]LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []LogEntry{}
	for _, e := range r.entries {
		switch {
		case zipCode == nil && email == nil:
			res = append(res, e)
		case zipCode != nil && e.ZipCode == *zipCode:
			res = append(res, e)
		case email != nil && e.Email == *email:
			res = append(res, e)
		}
	}
	return res, nil
}

func TestFetchPassesThroughPayload(t *testing.T) {
	provider := &stubProvider{payload: `{"main":{"temp":71.2}}`}
	svc := NewService(provider, newMemoryLogRepo())

	got, err := svc.Fetch(context.Background(), "12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != provider.payload {
		t.Fatalf("payload altered: %q", got)
	}
	if provider.calls != 1 {
		t.Fatalf("expected exactly one provider call, got %d", provider.calls)
	}
}

func TestFetchPropagatesError(t *testing.T) {
	provider := &stubProvider{err: errors.New("boom")}
	svc := NewService(provider, newMemoryLogRepo())

	if _, err := svc.Fetch(context.Background(), "12345"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLogRequestStampsTimestamp(t *testing.T) {
	repo := newMemoryLogRepo()
	svc := NewService(&stubProvider{}, repo)

	e, err := svc.LogRequest(context.Background(), "a@b.com", "12345", "sunny")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if e.Timestamp.IsZero() {
		t.Fatalf("expected timestamp")
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected one persisted entry, got %d", len(repo.entries))
	}
}

func TestHistoryFilters(t *testing.T) {
	repo := newMemoryLogRepo()
	svc := NewService(&stubProvider{}, repo)
	ctx := context.Background()

	seed := []LogEntry{
		{Email: "a@b.com", ZipCode: "12345", WeatherDetails: "sunny"},
		{Email: "c@d.com", ZipCode: "12345", WeatherDetails: "cloudy"},
		{Email: "a@b.com", ZipCode: "99999", WeatherDetails: "rain"},
		{Email: "x@y.com", ZipCode: "00000", WeatherDetails: "snow"},
	}
	for i := range seed {
		e := seed[i]
		if err := repo.Insert(ctx, &e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// zip OR email: three entries match one filter or the other
	got, err := svc.History(ctx, "12345", "a@b.com")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for _, e := range got {
		if e.ZipCode != "12345" && e.Email != "a@b.com" {
			t.Fatalf("entry matches neither filter: %+v", e)
		}
	}

	// single filter
	got, err = svc.History(ctx, "", "a@b.com")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	// no filters returns everything
	got, err = svc.History(ctx, "", "")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != len(seed) {
		t.Fatalf("expected %d entries, got %d", len(seed), len(got))
	}
}

func TestHistoryEmptyStore(t *testing.T) {
	svc := NewService(&stubProvider{}, newMemoryLogRepo())

	got, err := svc.History(context.Background(), "12345", "a@b.com")
	if err != nil {
		t.Fatalf("empty store should not fail: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
