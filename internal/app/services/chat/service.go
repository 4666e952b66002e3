package chat

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"sync"
	"time"

	"marketchat/internal/app/idempotency"
	appoutbox "marketchat/internal/app/outbox"
	"marketchat/internal/domain/catalog"
	domainchat "marketchat/internal/domain/chat"
	"marketchat/internal/domain/shared/events"
)

var ErrServiceNotConfigured = errors.New("chat: service missing dependencies")

// API is the caller-facing chat surface. Service implements it in process and
// messaging.Client implements it over gRPC.
type API interface {
	ResolveRoomID(ctx context.Context, caller domainchat.Caller, other, listingID string) (domainchat.RoomID, error)
	EnsureRoom(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, other string, rc domainchat.RoomContext) (bool, error)
	StartListingConversation(ctx context.Context, caller domainchat.Caller, listingID string) (*domainchat.Room, error)
	Room(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) (*domainchat.Room, error)
	ListMyRooms(ctx context.Context, caller domainchat.Caller) ([]domainchat.RoomSummary, error)
	SendMessage(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, text string, opts SendOptions) (domainchat.Message, error)
	ListMessages(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, params ListParams) (domainchat.Page, error)
	AcknowledgeRoom(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) error
	SubscribeMessages(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) (*Subscription[[]domainchat.Message], error)
	SubscribeMyRooms(ctx context.Context, caller domainchat.Caller) (*Subscription[[]domainchat.RoomSummary], error)
}

// Limits bounds message size and read windows. Zero values take defaults.
type Limits struct {
	MaxMessageLength int
	WindowSize       int
	PageSize         int
	MaxPageSize      int
}

func (l Limits) withDefaults() Limits {
	if l.MaxMessageLength <= 0 {
		l.MaxMessageLength = domainchat.DefaultMaxMessageLength
	}
	if l.WindowSize <= 0 {
		l.WindowSize = 200
	}
	if l.PageSize <= 0 {
		l.PageSize = 50
	}
	if l.MaxPageSize <= 0 {
		l.MaxPageSize = 200
	}
	if l.PageSize > l.MaxPageSize {
		l.PageSize = l.MaxPageSize
	}
	return l
}

type SendOptions struct {
	IdempotencyKey string
}

type ListParams struct {
	Limit  int
	Cursor string
}

type Service struct {
	Store       domainchat.Store
	Catalog     catalog.Catalog
	Outbox      appoutbox.Outbox
	Encoder     appoutbox.EventEncoder
	Idempotency idempotency.Store
	Limits      Limits
	Logger      *slog.Logger
	Now         func() time.Time

	keyLocks [64]sync.Mutex
}

// ResolveRoomID derives the room id between the caller and other for an optional listing.
func (s *Service) ResolveRoomID(ctx context.Context, caller domainchat.Caller, other, listingID string) (domainchat.RoomID, error) {
	if !caller.Authenticated() {
		return "", domainchat.ErrUnauthenticated
	}
	return domainchat.ResolveRoomID(caller.UserID, other, listingID)
}

// EnsureRoom creates the room between caller and other if absent, otherwise refreshes it.
// The supplied id must be the one derived from the participants and listing.
func (s *Service) EnsureRoom(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, other string, rc domainchat.RoomContext) (bool, error) {
	if err := s.ensureDependencies(); err != nil {
		return false, err
	}
	if !caller.Authenticated() {
		return false, domainchat.ErrUnauthenticated
	}
	seed, err := domainchat.NewRoomSeed(id, caller.UserID, other, rc)
	if err != nil {
		return false, err
	}
	created, err := s.Store.CreateRoom(ctx, seed)
	if err != nil {
		return false, fmt.Errorf("ensure room %s: %w", id, err)
	}
	if created {
		s.logger().Info("chat room created", "room_id", id, "context_key", seed.ContextKey)
		s.record(ctx, domainchat.RoomCreated{
			RoomID:       id,
			Participants: seed.Participants,
			ContextKey:   seed.ContextKey,
			At:           s.now(),
		})
	}
	return created, nil
}

// StartListingConversation opens (or reopens) the caller's conversation with the seller of
// a listing.
func (s *Service) StartListingConversation(ctx context.Context, caller domainchat.Caller, listingID string) (*domainchat.Room, error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	if !caller.Authenticated() {
		return nil, domainchat.ErrUnauthenticated
	}
	if s.Catalog == nil {
		return nil, ErrServiceNotConfigured
	}
	listing, err := s.Catalog.Lookup(ctx, listingID)
	if err != nil {
		if errors.Is(err, catalog.ErrListingNotFound) {
			return nil, fmt.Errorf("listing %s: %w", strings.TrimSpace(listingID), domainchat.ErrNotFound)
		}
		return nil, err
	}
	id, err := domainchat.ResolveRoomID(caller.UserID, listing.SellerID, listing.ID)
	if err != nil {
		return nil, err
	}
	rc := domainchat.RoomContext{ListingID: listing.ID, ListingTitle: listing.Title}
	if _, err := s.EnsureRoom(ctx, caller, id, listing.SellerID, rc); err != nil {
		return nil, err
	}
	return s.Room(ctx, caller, id)
}

// Room returns one room the caller participates in.
func (s *Service) Room(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) (*domainchat.Room, error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	if !caller.Authenticated() {
		return nil, domainchat.ErrUnauthenticated
	}
	return s.memberRoom(ctx, caller, id)
}

// ListMyRooms returns the caller's rooms, most recently active first.
func (s *Service) ListMyRooms(ctx context.Context, caller domainchat.Caller) ([]domainchat.RoomSummary, error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	if !caller.Authenticated() {
		return nil, domainchat.ErrUnauthenticated
	}
	return s.roomSummaries(ctx, caller.UserID)
}

func (s *Service) roomSummaries(ctx context.Context, userID string) ([]domainchat.RoomSummary, error) {
	rooms, err := s.Store.RoomsFor(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return domainchat.Summarize(rooms, userID), nil
}

func (s *Service) memberRoom(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) (*domainchat.Room, error) {
	room, err := s.Store.Room(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", id, err)
	}
	if !room.HasParticipant(caller.UserID) {
		s.denied("read", caller, id)
		return nil, domainchat.ErrPermissionDenied
	}
	return room, nil
}

func (s *Service) record(ctx context.Context, evs ...events.DomainEvent) {
	if s.Outbox == nil {
		return
	}
	var batch events.Batch
	for _, ev := range evs {
		batch.Record(ev)
	}
	if err := appoutbox.RecordDomainEvents(ctx, s.Outbox, s.Encoder, batch.Events()); err != nil {
		s.logger().Error("chat outbox record failed", "error", err, "events", batch.Len())
	}
}

func (s *Service) denied(op string, caller domainchat.Caller, id domainchat.RoomID) {
	s.logger().Warn("chat permission denied", "op", op, "user_id", caller.UserID, "room_id", id)
}

// lockKey serializes work on one idempotency key within this process.
func (s *Service) lockKey(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	mu := &s.keyLocks[h.Sum32()%uint32(len(s.keyLocks))]
	mu.Lock()
	return mu.Unlock
}

func (s *Service) ensureDependencies() error {
	if s == nil || s.Store == nil {
		return ErrServiceNotConfigured
	}
	return nil
}

func (s *Service) limits() Limits {
	return s.Limits.withDefaults()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

var _ API = (*Service)(nil)
