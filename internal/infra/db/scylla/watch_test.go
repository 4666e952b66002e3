package scylla

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketchat/internal/domain/chat"
)

type sampleState struct {
	mu    sync.Mutex
	value string
	err   error
}

func (p *sampleState) set(v string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value, p.err = v, err
}

func (p *sampleState) sample(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.err
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestPollSignalsOnChange(t *testing.T) {
	state := &sampleState{value: "a"}
	s, err := poll(context.Background(), 5*time.Millisecond, state.sample, quiet)
	require.NoError(t, err)
	defer s.Close()

	select {
	case <-s.Changes():
		t.Fatal("signal without a change")
	case <-time.After(30 * time.Millisecond):
	}

	state.set("b", nil)
	select {
	case _, ok := <-s.Changes():
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("change not signalled")
	}
}

func TestPollEndsAfterRepeatedFailures(t *testing.T) {
	state := &sampleState{value: "a"}
	s, err := poll(context.Background(), 5*time.Millisecond, state.sample, quiet)
	require.NoError(t, err)
	defer s.Close()

	state.set("", errors.New("coordinator gone"))
	select {
	case _, ok := <-s.Changes():
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end")
	}
	assert.ErrorIs(t, s.Err(), chat.ErrTransient)
}

func TestPollInitialSampleFailure(t *testing.T) {
	state := &sampleState{err: errors.New("down")}
	_, err := poll(context.Background(), time.Millisecond, state.sample, quiet)
	assert.Error(t, err)
}

func TestFingerprintTracksUnread(t *testing.T) {
	room := chat.Room{ID: "a|b", Participants: [2]string{"a", "b"}, Unread: map[string]int64{"a": 0, "b": 1}}
	before := fingerprint([]chat.Room{room})
	room.Unread = map[string]int64{"a": 0, "b": 0}
	assert.NotEqual(t, before, fingerprint([]chat.Room{room}))
	assert.Equal(t, fingerprint(nil), fingerprint([]chat.Room{}))
}
