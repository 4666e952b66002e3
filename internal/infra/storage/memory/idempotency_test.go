package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketchat/internal/app/idempotency"
)

func TestIdempotencyExpiryCountsFromSave(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewIdempotencyStore(time.Hour)
	store.Now = func() time.Time { return now }

	// a result stamped long before it was stored must still be replayed
	old := idempotency.Record{Key: "k", Payload: []byte(`{}`), OccurredAt: now.Add(-24 * time.Hour)}
	require.NoError(t, store.Save(ctx, old))

	rec, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, old.Payload, rec.Payload)
	assert.True(t, old.OccurredAt.Equal(rec.OccurredAt))

	now = now.Add(59 * time.Minute)
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)

	now = now.Add(2 * time.Minute)
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIdempotencyWithoutTTLKeepsRecords(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewIdempotencyStore(0)
	store.Now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, idempotency.Record{Key: "k"}))
	now = now.Add(365 * 24 * time.Hour)

	rec, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), rec.OccurredAt)
}
