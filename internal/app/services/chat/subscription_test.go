package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainchat "marketchat/internal/domain/chat"
)

// awaitSnapshot reads snapshots until match accepts one.
func awaitSnapshot[T any](t *testing.T, sub *Subscription[T], match func(T) bool) T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v, ok := <-sub.Events():
			require.True(t, ok, "subscription ended: %v", sub.Err())
			if match(v) {
				return v
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot")
		}
	}
}

func TestSubscribeMessagesDeliversWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.openRoom(t, "a", "b", "")

	sub, err := f.svc.SubscribeMessages(ctx, caller("b"), id)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	awaitSnapshot(t, sub, func(msgs []domainchat.Message) bool { return len(msgs) == 0 })

	for _, text := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		_, err := f.svc.SendMessage(ctx, caller("a"), id, text, SendOptions{})
		require.NoError(t, err)
	}

	window := awaitSnapshot(t, sub, func(msgs []domainchat.Message) bool {
		return len(msgs) > 0 && msgs[len(msgs)-1].Text == "seven"
	})
	require.Len(t, window, 5)
	assert.Equal(t, "three", window[0].Text)
	for i := 1; i < len(window); i++ {
		assert.True(t, window[i-1].Before(window[i]))
	}
}

func TestSubscribeMessagesRequiresParticipant(t *testing.T) {
	f := newFixture(t)
	id := f.openRoom(t, "a", "b", "")

	_, err := f.svc.SubscribeMessages(context.Background(), caller("c"), id)
	assert.ErrorIs(t, err, domainchat.ErrPermissionDenied)

	_, err = f.svc.SubscribeMessages(context.Background(), caller("a"), "a|nobody")
	assert.ErrorIs(t, err, domainchat.ErrNotFound)

	_, err = f.svc.SubscribeMyRooms(context.Background(), domainchat.Caller{})
	assert.ErrorIs(t, err, domainchat.ErrUnauthenticated)
}

func TestSubscribeMyRoomsFollowsActivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.openRoom(t, "me", "x", "")
	second := f.openRoom(t, "me", "y", "")

	sub, err := f.svc.SubscribeMyRooms(ctx, caller("me"))
	require.NoError(t, err)
	defer sub.Unsubscribe()

	rooms := awaitSnapshot(t, sub, func(r []domainchat.RoomSummary) bool { return len(r) == 2 })
	assert.Equal(t, second, rooms[0].Room.ID)

	_, err = f.svc.SendMessage(ctx, caller("x"), first, "ping", SendOptions{})
	require.NoError(t, err)
	rooms = awaitSnapshot(t, sub, func(r []domainchat.RoomSummary) bool {
		return len(r) == 2 && r[0].Room.ID == first
	})
	assert.Equal(t, int64(1), rooms[0].UnreadCount)

	require.NoError(t, f.svc.AcknowledgeRoom(ctx, caller("me"), first))
	awaitSnapshot(t, sub, func(r []domainchat.RoomSummary) bool {
		return len(r) == 2 && r[0].Room.ID == first && r[0].UnreadCount == 0
	})

	third := f.openRoom(t, "z", "me", "L5")
	awaitSnapshot(t, sub, func(r []domainchat.RoomSummary) bool {
		return len(r) == 3 && r[0].Room.ID == third
	})
}

func TestUnsubscribeEndsCleanly(t *testing.T) {
	f := newFixture(t)
	id := f.openRoom(t, "a", "b", "")

	sub, err := f.svc.SubscribeMessages(context.Background(), caller("a"), id)
	require.NoError(t, err)
	sub.Unsubscribe()
	sub.Unsubscribe()

	for range sub.Events() {
	}
	assert.NoError(t, sub.Err())
}

func TestSubscriptionReportsPumpFailure(t *testing.T) {
	boom := errors.New("boom")
	sub := NewSubscription(context.Background(), func(ctx context.Context, emit func(int) bool) error {
		emit(1)
		return boom
	})
	<-sub.Done()
	var got []int
	for v := range sub.Events() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1}, got)
	assert.ErrorIs(t, sub.Err(), boom)
}

func TestSubscriptionCoalescesSnapshots(t *testing.T) {
	sub := NewSubscription(context.Background(), func(ctx context.Context, emit func(int) bool) error {
		for i := 1; i <= 100; i++ {
			emit(i)
		}
		return nil
	})
	<-sub.Done()
	var got []int
	for v := range sub.Events() {
		got = append(got, v)
	}
	assert.Equal(t, []int{100}, got)
	assert.NoError(t, sub.Err())
}

func TestSubscriptionParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := NewSubscription(ctx, func(ctx context.Context, emit func(int) bool) error {
		<-ctx.Done()
		return ctx.Err()
	})
	cancel()
	<-sub.Done()
	assert.ErrorIs(t, sub.Err(), context.Canceled)
}
