package messaging

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	chatsvc "marketchat/internal/app/services/chat"
	domainauth "marketchat/internal/domain/auth"
	"marketchat/internal/domain/catalog"
	domainchat "marketchat/internal/domain/chat"
	domainuser "marketchat/internal/domain/user"
	grpcserver "marketchat/internal/infra/grpc"
	"marketchat/internal/infra/storage/memory"
)

type tokenVerifier map[string]string

func (v tokenVerifier) Verify(ctx context.Context, token string) (domainauth.Identity, error) {
	id, ok := v[token]
	if !ok {
		return domainauth.Identity{}, domainauth.ErrInvalidToken
	}
	return domainauth.Identity{UserID: domainuser.ID(id)}, nil
}

func user(id string) domainchat.Caller {
	return domainchat.Caller{UserID: id, Credential: "tok-" + id}
}

func newRemote(t *testing.T) *Client {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := &chatsvc.Service{
		Store:       memory.NewChatStore(),
		Catalog:     memory.NewCatalog(catalog.Listing{ID: "L100", Title: "Road bike", SellerID: "u2"}),
		Idempotency: memory.NewIdempotencyStore(time.Hour),
		Logger:      log,
	}
	verifier := tokenVerifier{"tok-u1": "u1", "tok-u2": "u2", "tok-u3": "u3"}
	gs, _ := grpcserver.New(&grpcserver.Server{Chat: svc, Logger: log}, grpcserver.Authenticator{Verifier: verifier, Logger: log}, log)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	client, err := NewClient(Config{Addr: "passthrough:///bufnet", CallTimeout: 5 * time.Second}, log,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func openRoom(t *testing.T, c *Client) domainchat.RoomID {
	t.Helper()
	ctx := context.Background()
	id, err := c.ResolveRoomID(ctx, user("u1"), "u2", "L100")
	require.NoError(t, err)
	require.Equal(t, domainchat.RoomID("L100|u1|u2"), id)
	created, err := c.EnsureRoom(ctx, user("u1"), id, "u2", domainchat.RoomContext{ListingID: "L100", ListingTitle: "Road bike"})
	require.NoError(t, err)
	require.True(t, created)
	return id
}

func TestRemoteConversation(t *testing.T) {
	c := newRemote(t)
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))
	id := openRoom(t, c)

	created, err := c.EnsureRoom(ctx, user("u2"), id, "u1", domainchat.RoomContext{ListingID: "L100"})
	require.NoError(t, err)
	assert.False(t, created)

	sent, err := c.SendMessage(ctx, user("u1"), id, "still for sale?", chatsvc.SendOptions{IdempotencyKey: "k1"})
	require.NoError(t, err)
	again, err := c.SendMessage(ctx, user("u1"), id, "still for sale?", chatsvc.SendOptions{IdempotencyKey: "k1"})
	require.NoError(t, err)
	assert.Equal(t, sent.ID, again.ID)

	page, err := c.ListMessages(ctx, user("u2"), id, chatsvc.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	assert.Equal(t, "still for sale?", page.Messages[0].Text)
	assert.True(t, sent.CreatedAt.Equal(page.Messages[0].CreatedAt))

	rooms, err := c.ListMyRooms(ctx, user("u2"))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, int64(1), rooms[0].UnreadCount)
	assert.Equal(t, "u1", rooms[0].Counterpart)

	require.NoError(t, c.AcknowledgeRoom(ctx, user("u2"), id))
	room, err := c.Room(ctx, user("u2"), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), room.UnreadFor("u2"))
	assert.Equal(t, [2]string{"u1", "u2"}, room.Participants)

	room, err = c.StartListingConversation(ctx, user("u1"), "L100")
	require.NoError(t, err)
	assert.Equal(t, id, room.ID)
}

func TestRemoteErrorsKeepTheirSentinels(t *testing.T) {
	c := newRemote(t)
	ctx := context.Background()
	id := openRoom(t, c)

	_, err := c.SendMessage(ctx, user("u3"), id, "hi", chatsvc.SendOptions{})
	assert.ErrorIs(t, err, domainchat.ErrPermissionDenied)

	_, err = c.SendMessage(ctx, user("u1"), id, "   ", chatsvc.SendOptions{})
	assert.ErrorIs(t, err, domainchat.ErrEmptyText)

	_, err = c.ResolveRoomID(ctx, user("u1"), "u1", "")
	assert.ErrorIs(t, err, domainchat.ErrSameParticipant)

	_, err = c.Room(ctx, user("u1"), "L404|u1|u2")
	assert.ErrorIs(t, err, domainchat.ErrNotFound)

	_, err = c.ListMyRooms(ctx, domainchat.Caller{UserID: "u1"})
	assert.ErrorIs(t, err, domainchat.ErrUnauthenticated)

	_, err = c.ListMyRooms(ctx, domainchat.Caller{UserID: "u1", Credential: "forged"})
	assert.ErrorIs(t, err, domainchat.ErrUnauthenticated)

	_, err = c.ListMessages(ctx, user("u1"), id, chatsvc.ListParams{Cursor: "%%%"})
	assert.ErrorIs(t, err, domainchat.ErrInvalidCursor)
}

func TestRemoteSubscriptions(t *testing.T) {
	c := newRemote(t)
	ctx := context.Background()
	id := openRoom(t, c)

	_, err := c.SubscribeMessages(ctx, user("u3"), id)
	require.ErrorIs(t, err, domainchat.ErrPermissionDenied)

	sub, err := c.SubscribeMessages(ctx, user("u2"), id)
	require.NoError(t, err)
	defer sub.Unsubscribe()
	rooms, err := c.SubscribeMyRooms(ctx, user("u2"))
	require.NoError(t, err)
	defer rooms.Unsubscribe()

	_, err = c.SendMessage(ctx, user("u1"), id, "hello", chatsvc.SendOptions{})
	require.NoError(t, err)

	deadline := time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case window, ok := <-sub.Events():
			require.True(t, ok, "stream ended: %v", sub.Err())
			got = len(window) == 1 && window[0].Text == "hello"
		case <-deadline:
			t.Fatal("no snapshot with the new message")
		}
	}
	for got := false; !got; {
		select {
		case list, ok := <-rooms.Events():
			require.True(t, ok, "stream ended: %v", rooms.Err())
			got = len(list) == 1 && list[0].UnreadCount == 1
		case <-deadline:
			t.Fatal("no room snapshot with the unread message")
		}
	}

	sub.Unsubscribe()
	assert.NoError(t, sub.Err())
}
