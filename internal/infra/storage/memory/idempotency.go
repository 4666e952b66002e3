package memory

import (
	"context"
	"sync"
	"time"

	"marketchat/internal/app/idempotency"
)

type idempotencyEntry struct {
	rec     idempotency.Record
	savedAt time.Time
}

// IdempotencyStore remembers operation results for TTL (forever when zero). Expiry counts
// from when the store saved a record, on the store's own clock.
type IdempotencyStore struct {
	mu    sync.Mutex
	items map[string]idempotencyEntry
	TTL   time.Duration
	Now   func() time.Time
}

func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{items: make(map[string]idempotencyEntry), TTL: ttl}
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) (idempotency.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[key]
	if !ok {
		return idempotency.Record{}, false, nil
	}
	if s.TTL > 0 && s.now().Sub(entry.savedAt) > s.TTL {
		delete(s.items, key)
		return idempotency.Record{}, false, nil
	}
	return entry.rec, true, nil
}

func (s *IdempotencyStore) Save(ctx context.Context, rec idempotency.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = now
	}
	s.items[rec.Key] = idempotencyEntry{rec: rec, savedAt: now}
	return nil
}

func (s *IdempotencyStore) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

var _ idempotency.Store = (*IdempotencyStore)(nil)
