package scylla

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketchat/internal/domain/chat"
)

// ledgerWrite is one applied conditional write, in commit order.
type ledgerWrite struct {
	sender string // empty for acknowledgements
	at     time.Time
	unread map[string]int64
}

// fakeRows applies conditional writes the way an LWT does: only when the row still holds
// the values the writer read.
type fakeRows struct {
	mu     sync.Mutex
	rows   map[chat.RoomID]*roomRow
	writes []ledgerWrite
}

func newFakeRows(id chat.RoomID, a, b string, at time.Time) *fakeRows {
	row := &roomRow{
		room: chat.Room{
			ID:           id,
			Participants: [2]string{a, b},
			CreatedAt:    at,
			UpdatedAt:    at,
		},
		lastMessageAt: at,
		unread:        map[string]int64{a: 0, b: 0},
	}
	return &fakeRows{rows: map[chat.RoomID]*roomRow{id: row}}
}

func (f *fakeRows) load(_ context.Context, id chat.RoomID) (*roomRow, error) {
	runtime.Gosched()
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, chat.ErrNotFound
	}
	out := *row
	out.unread = copyLedger(row.unread)
	out.room.Unread = copyLedger(row.unread)
	return &out, nil
}

func (f *fakeRows) casAppend(_ context.Context, prev *roomRow, next roomAppend) (bool, error) {
	runtime.Gosched()
	f.mu.Lock()
	defer f.mu.Unlock()
	row := f.rows[prev.room.ID]
	if !row.lastMessageAt.Equal(prev.lastMessageAt) || !sameLedger(row.unread, prev.unread) {
		return false, nil
	}
	row.lastMessageAt = next.at
	row.room.UpdatedAt = next.at
	row.room.LastMessageText = next.text
	row.room.LastMessageSender = next.sender
	row.unread = copyLedger(next.unread)
	f.writes = append(f.writes, ledgerWrite{sender: next.sender, at: next.at, unread: copyLedger(next.unread)})
	return true, nil
}

func (f *fakeRows) casUnread(_ context.Context, prev *roomRow, unread map[string]int64, at time.Time) (bool, error) {
	runtime.Gosched()
	f.mu.Lock()
	defer f.mu.Unlock()
	row := f.rows[prev.room.ID]
	if !sameLedger(row.unread, prev.unread) {
		return false, nil
	}
	row.unread = copyLedger(unread)
	row.room.UpdatedAt = at
	f.writes = append(f.writes, ledgerWrite{at: at, unread: copyLedger(unread)})
	return true, nil
}

func copyLedger(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sameLedger(a, b map[string]int64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

const testRoom chat.RoomID = "u1|u2"

func newLedgerStore(rows *fakeRows, now func() time.Time) *ChatStore {
	return &ChatStore{rows: rows, logger: quiet, Now: now}
}

func send(t *testing.T, s *ChatStore, sender string) time.Time {
	t.Helper()
	at, err := s.claim(context.Background(), chat.AppendParams{RoomID: testRoom, SenderID: sender, Text: "hi"})
	require.NoError(t, err)
	return at
}

func requireNonNegative(t *testing.T, writes []ledgerWrite) {
	t.Helper()
	for i, w := range writes {
		for p, c := range w.unread {
			require.GreaterOrEqualf(t, c, int64(0), "write %d left %s at %d", i, p, c)
		}
	}
}

func TestClaimMovesLedgerWithThePreview(t *testing.T) {
	rows := newFakeRows(testRoom, "u1", "u2", t0)
	s := newLedgerStore(rows, func() time.Time { return t0 })

	first := send(t, s, "u1")
	second := send(t, s, "u1")
	assert.True(t, second.After(first))

	got, err := s.Room(context.Background(), testRoom)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.UnreadFor("u2"))
	assert.Equal(t, int64(0), got.UnreadFor("u1"))
	assert.Equal(t, "u1", got.LastMessageSender)
	assert.True(t, got.UpdatedAt.Equal(second))

	send(t, s, "u2")
	got, err = s.Room(context.Background(), testRoom)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.UnreadFor("u2"))
	assert.Equal(t, int64(1), got.UnreadFor("u1"))
}

func TestClaimRejectsOutsiders(t *testing.T) {
	rows := newFakeRows(testRoom, "u1", "u2", t0)
	s := newLedgerStore(rows, func() time.Time { return t0 })

	_, err := s.claim(context.Background(), chat.AppendParams{RoomID: testRoom, SenderID: "u3", Text: "hi"})
	assert.ErrorIs(t, err, chat.ErrPermissionDenied)
	_, err = s.claim(context.Background(), chat.AppendParams{RoomID: "u1|u9", SenderID: "u1", Text: "hi"})
	assert.ErrorIs(t, err, chat.ErrNotFound)
	assert.ErrorIs(t, s.Acknowledge(context.Background(), testRoom, "u3"), chat.ErrPermissionDenied)
	assert.Empty(t, rows.writes)
}

func TestConcurrentAcknowledgementsStopAtZero(t *testing.T) {
	rows := newFakeRows(testRoom, "u1", "u2", t0)
	s := newLedgerStore(rows, func() time.Time { return t0 })
	for i := 0; i < 3; i++ {
		send(t, s, "u1")
	}

	var wg sync.WaitGroup
	errs := make(chan error, casAttempts)
	for i := 0; i < casAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Acknowledge(context.Background(), testRoom, "u2")
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := s.Room(context.Background(), testRoom)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.UnreadFor("u2"))
	requireNonNegative(t, rows.writes)

	send(t, s, "u1")
	got, err = s.Room(context.Background(), testRoom)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UnreadFor("u2"))
}

func TestSendsRacingAcknowledgementsKeepTheLedgerExact(t *testing.T) {
	rows := newFakeRows(testRoom, "u1", "u2", t0)
	s := newLedgerStore(rows, func() time.Time { return t0 })

	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make(chan error, casAttempts)
	for i := 0; i < casAttempts/2; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			_, err := s.claim(context.Background(), chat.AppendParams{RoomID: testRoom, SenderID: "u1", Text: "hi"})
			errs <- err
		}()
		go func() {
			defer wg.Done()
			<-start
			errs <- s.Acknowledge(context.Background(), testRoom, "u2")
		}()
	}
	close(start)
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	requireNonNegative(t, rows.writes)
	var want int64
	var last time.Time
	for _, w := range rows.writes {
		if w.sender == "" {
			want = 0
			continue
		}
		want++
		assert.True(t, w.at.After(last), "append timestamps must increase")
		last = w.at
	}
	got, err := s.Room(context.Background(), testRoom)
	require.NoError(t, err)
	assert.Equal(t, want, got.UnreadFor("u2"))
	assert.Equal(t, int64(0), got.UnreadFor("u1"))
}

func TestAcknowledgeRefreshesUpdatedAt(t *testing.T) {
	rows := newFakeRows(testRoom, "u1", "u2", t0)
	clock := t0
	s := newLedgerStore(rows, func() time.Time { return clock })
	sent := send(t, s, "u1")

	clock = t0.Add(time.Minute)
	require.NoError(t, s.Acknowledge(context.Background(), testRoom, "u2"))

	got, err := s.Room(context.Background(), testRoom)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(sent))
	assert.True(t, got.UpdatedAt.Equal(clock))
}

func TestTouchIsAlwaysConditional(t *testing.T) {
	seed := chat.RoomSeed{ID: testRoom, Participants: [2]string{"u1", "u2"}, ContextLabel: "Road bike"}

	stmt, args := touchStatement(seed, "", t0)
	assert.Contains(t, stmt, "IF context_label = ?")
	assert.Equal(t, []interface{}{t0, "Road bike", string(testRoom), ""}, args)

	stmt, args = touchStatement(seed, "Desk", t0)
	assert.True(t, strings.HasSuffix(stmt, "IF EXISTS"), stmt)
	assert.Equal(t, []interface{}{t0, string(testRoom)}, args)

	seed.ContextLabel = ""
	stmt, _ = touchStatement(seed, "", t0)
	assert.True(t, strings.HasSuffix(stmt, "IF EXISTS"), stmt)
}
