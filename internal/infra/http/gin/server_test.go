package ginserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"marketchat/internal/app/dto"
	authsvc "marketchat/internal/app/services/auth"
	chatsvc "marketchat/internal/app/services/chat"
	domainauth "marketchat/internal/domain/auth"
	"marketchat/internal/domain/catalog"
	domainchat "marketchat/internal/domain/chat"
	domainuser "marketchat/internal/domain/user"
	"marketchat/internal/infra/obs"
	"marketchat/internal/infra/security"
	"marketchat/internal/infra/storage/memory"
)

type staticVerifier map[string]domainauth.Identity

func (v staticVerifier) Verify(ctx context.Context, token string) (domainauth.Identity, error) {
	identity, ok := v[token]
	if !ok {
		return domainauth.Identity{}, domainauth.ErrInvalidToken
	}
	return identity, nil
}

type testServer struct {
	router *gin.Engine
	chat   *chatsvc.Service
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, limiter *KeyedRateLimiter) testServer {
	t.Helper()
	log := discardLogger()
	svc := &chatsvc.Service{
		Store:       memory.NewChatStore(),
		Catalog:     memory.NewCatalog(catalog.Listing{ID: "L100", Title: "Road bike", SellerID: "u2"}),
		Idempotency: memory.NewIdempotencyStore(time.Hour),
		Logger:      log,
	}
	verifier := staticVerifier{}
	for _, id := range []string{"u1", "u2", "u3"} {
		verifier["tok-"+id] = domainauth.Identity{UserID: domainuser.ID(id), Name: strings.ToUpper(id), Roles: []domainuser.Role{domainuser.RoleBuyer}}
	}
	router := NewRouter("test", obs.Middleware{Logger: log}, obs.HealthHandlers{Ready: svc.Store.Ping}, Handlers{
		Chat:           ChatHandler{Chat: svc, Logger: log},
		Auth:           AuthHandler{Logger: log},
		AuthMiddleware: NewAuthMiddleware(AuthMiddleware{Verifier: verifier, Logger: log}),
		SendLimiter:    limiter,
	})
	return testServer{router: router, chat: svc}
}

func (s testServer) do(t *testing.T, method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func roomPath(id string, suffix string) string {
	return "/api/v1/chat/rooms/" + url.PathEscape(id) + suffix
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s testServer) openRoom(t *testing.T) string {
	t.Helper()
	rec := s.do(t, http.MethodGet, "/api/v1/chat/resolve?other_id=u2&listing_id=L100", "tok-u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	id := decode[dto.ResolveRoomResponse](t, rec).RoomID
	require.Equal(t, "L100|u1|u2", id)

	rec = s.do(t, http.MethodPut, roomPath(id, ""), "tok-u1", dto.EnsureRoomRequest{OtherID: "u2", ListingID: "L100"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return id
}

func TestChatRoutesRequireAuthentication(t *testing.T) {
	srv := newTestServer(t, nil)
	for _, path := range []string{"/api/v1/chat/rooms", "/api/v1/chat/resolve?other_id=u2"} {
		rec := srv.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "unauthenticated", decode[dto.ErrorResponse](t, rec).Code)
	}
	rec := srv.do(t, http.MethodGet, "/api/v1/chat/rooms", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConversationOverHTTP(t *testing.T) {
	srv := newTestServer(t, nil)
	id := srv.openRoom(t)

	rec := srv.do(t, http.MethodPut, roomPath(id, ""), "tok-u2", dto.EnsureRoomRequest{OtherID: "u1", ListingID: "L100"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[dto.EnsureRoomResponse](t, rec).Created)

	rec = srv.do(t, http.MethodPost, roomPath(id, "/messages"), "tok-u1", dto.SendMessageRequest{Text: "  is it available?  "})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sent := decode[dto.ChatMessage](t, rec)
	assert.Equal(t, "is it available?", sent.Text)
	assert.Equal(t, "u1", sent.SenderID)

	rec = srv.do(t, http.MethodGet, "/api/v1/chat/rooms", "tok-u2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[dto.RoomList](t, rec)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "u1", list.Items[0].Counterpart)
	assert.Equal(t, int64(1), list.Items[0].UnreadCount)

	rec = srv.do(t, http.MethodGet, roomPath(id, "/messages"), "tok-u2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[dto.ChatMessageList](t, rec)
	require.Len(t, page.Items, 1)
	assert.Equal(t, sent.ID, page.Items[0].ID)
	assert.Empty(t, page.NextCursor)

	rec = srv.do(t, http.MethodPost, roomPath(id, "/ack"), "tok-u2", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, roomPath(id, ""), "tok-u2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	room := decode[dto.Room](t, rec)
	assert.Equal(t, int64(0), room.Unread["u2"])
	assert.Equal(t, "is it available?", room.LastMessageText)
}

func TestIntruderAndUnknownRoom(t *testing.T) {
	srv := newTestServer(t, nil)
	id := srv.openRoom(t)

	rec := srv.do(t, http.MethodPost, roomPath(id, "/messages"), "tok-u3", dto.SendMessageRequest{Text: "hi"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "permission_denied", decode[dto.ErrorResponse](t, rec).Code)

	rec = srv.do(t, http.MethodGet, roomPath(id, "/messages"), "tok-u3", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodGet, roomPath("L999|u1|u2", ""), "tok-u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendValidationErrors(t *testing.T) {
	srv := newTestServer(t, nil)
	id := srv.openRoom(t)

	rec := srv.do(t, http.MethodPost, roomPath(id, "/messages"), "tok-u1", dto.SendMessageRequest{Text: "   "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[dto.ErrorResponse](t, rec)
	assert.Equal(t, "invalid_argument", body.Code)
	assert.False(t, body.Retryable)

	rec = srv.do(t, http.MethodGet, "/api/v1/chat/resolve?other_id=u1", "tok-u1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodGet, roomPath(id, "/messages?cursor=%25%25"), "tok-u1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendIdempotencyHeader(t *testing.T) {
	srv := newTestServer(t, nil)
	id := srv.openRoom(t)

	first := srv.do(t, http.MethodPost, roomPath(id, "/messages"), "tok-u1", dto.SendMessageRequest{Text: "once"}, idempotencyHeader, "k-1")
	require.Equal(t, http.StatusCreated, first.Code)
	second := srv.do(t, http.MethodPost, roomPath(id, "/messages"), "tok-u1", dto.SendMessageRequest{Text: "once"}, idempotencyHeader, "k-1")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, decode[dto.ChatMessage](t, first).ID, decode[dto.ChatMessage](t, second).ID)

	rec := srv.do(t, http.MethodGet, roomPath(id, "/messages"), "tok-u1", nil)
	assert.Len(t, decode[dto.ChatMessageList](t, rec).Items, 1)
}

func TestSendIsRateLimitedPerUser(t *testing.T) {
	srv := newTestServer(t, NewKeyedRateLimiter(1, 1))
	id := srv.openRoom(t)

	rec := srv.do(t, http.MethodPost, roomPath(id, "/messages"), "tok-u1", dto.SendMessageRequest{Text: "one"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = srv.do(t, http.MethodPost, roomPath(id, "/messages"), "tok-u1", dto.SendMessageRequest{Text: "two"})
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.True(t, decode[dto.ErrorResponse](t, rec).Retryable)

	rec = srv.do(t, http.MethodPost, roomPath(id, "/messages"), "tok-u2", dto.SendMessageRequest{Text: "reply"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestKeyedRateLimiterPrunesIdleKeys(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rl := NewKeyedRateLimiter(60, 1)
	rl.now = func() time.Time { return now }
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	now = now.Add(limiterIdleTTL + time.Second)
	assert.Equal(t, 1, rl.Prune())
	assert.True(t, rl.Allow("a"))
}

func TestStartListingConversationRoute(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, http.MethodPost, "/api/v1/listings/L100/conversation", "tok-u1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	room := decode[dto.Room](t, rec)
	assert.Equal(t, "L100|u1|u2", room.ID)
	assert.Equal(t, "Road bike", room.ContextLabel)

	rec = srv.do(t, http.MethodPost, "/api/v1/listings/L100/conversation", "tok-u2", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/listings/missing/conversation", "tok-u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t, nil)
	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/livez", "", nil).Code)
	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/readyz", "", nil).Code)
}

func dialWS(t *testing.T, base, path, token string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(base, "http") + path + "?access_token=" + url.QueryEscape(token)
	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn, match func(dto.Frame) bool) dto.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var frame dto.Frame
		require.NoError(t, conn.ReadJSON(&frame))
		if match(frame) {
			return frame
		}
	}
}

func TestMessageStreamDeliversSnapshotsAndAcks(t *testing.T) {
	srv := newTestServer(t, nil)
	id := srv.openRoom(t)
	httpSrv := httptest.NewServer(srv.router)
	defer httpSrv.Close()

	conn := dialWS(t, httpSrv.URL, roomPath(id, "/ws"), "tok-u2")
	first := readFrame(t, conn, func(dto.Frame) bool { return true })
	assert.Equal(t, dto.FrameSnapshot, first.Type)
	assert.Empty(t, first.Messages)

	_, err := srv.chat.SendMessage(context.Background(), domainchat.Caller{UserID: "u1"}, domainchat.RoomID(id), "hello", chatsvc.SendOptions{})
	require.NoError(t, err)
	frame := readFrame(t, conn, func(f dto.Frame) bool { return len(f.Messages) == 1 })
	assert.Equal(t, "hello", frame.Messages[0].Text)

	require.NoError(t, conn.WriteJSON(dto.ClientFrame{Type: dto.FrameAck}))
	require.Eventually(t, func() bool {
		room, err := srv.chat.Room(context.Background(), domainchat.Caller{UserID: "u2"}, domainchat.RoomID(id))
		return err == nil && room.UnreadFor("u2") == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestMessageStreamRejectsIntruderWithErrorFrame(t *testing.T) {
	srv := newTestServer(t, nil)
	id := srv.openRoom(t)
	httpSrv := httptest.NewServer(srv.router)
	defer httpSrv.Close()

	conn := dialWS(t, httpSrv.URL, roomPath(id, "/ws"), "tok-u3")
	frame := readFrame(t, conn, func(dto.Frame) bool { return true })
	assert.Equal(t, dto.FrameError, frame.Type)
	assert.Equal(t, "could not load conversation", frame.Error)
	assert.Empty(t, frame.Messages)
}

func TestRoomStreamFollowsActivity(t *testing.T) {
	srv := newTestServer(t, nil)
	httpSrv := httptest.NewServer(srv.router)
	defer httpSrv.Close()

	conn := dialWS(t, httpSrv.URL, "/api/v1/chat/ws", "tok-u2")
	first := readFrame(t, conn, func(dto.Frame) bool { return true })
	assert.Equal(t, dto.FrameRooms, first.Type)
	assert.Empty(t, first.Rooms)

	id := srv.openRoom(t)
	frame := readFrame(t, conn, func(f dto.Frame) bool { return len(f.Rooms) == 1 })
	assert.Equal(t, id, frame.Rooms[0].Room.ID)
	assert.Equal(t, "u1", frame.Rooms[0].Counterpart)
}

func TestAuthRoutesWithSessionService(t *testing.T) {
	log := discardLogger()
	auth := &authsvc.Service{
		Users:     memory.NewUserRepository(),
		Sessions:  memory.NewSessionStore(),
		Passwords: security.BcryptHasher{Cost: bcrypt.MinCost},
		Tokens:    security.RandomTokenGenerator{},
		Logger:    log,
	}
	router := NewRouter("test", obs.Middleware{Logger: log}, obs.HealthHandlers{}, Handlers{
		Auth:           AuthHandler{Service: auth, Logger: log},
		AuthMiddleware: NewAuthMiddleware(AuthMiddleware{Verifier: auth, Logger: log}),
	})
	srv := testServer{router: router}

	rec := srv.do(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{Email: "ann@example.com", Name: "Ann", Password: "password1", WantToSell: true})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reg := decode[dto.AuthResponse](t, rec)
	assert.ElementsMatch(t, []string{"buyer", "seller"}, reg.User.Roles)

	rec = srv.do(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{Email: "ann@example.com", Name: "Ann", Password: "password1"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "ann@example.com", Password: "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "ann@example.com", Password: "password1"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[dto.AuthResponse](t, rec).Token

	rec = srv.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[dto.UserProfile](t, rec)
	assert.Equal(t, reg.User.ID, me.ID)
	assert.Equal(t, "ann@example.com", me.Email)

	rec = srv.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = srv.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc", extractBearerToken("Bearer abc"))
	assert.Equal(t, "abc", extractBearerToken("bearer  abc "))
	assert.Empty(t, extractBearerToken("Basic abc"))
	assert.Empty(t, extractBearerToken(""))
}
