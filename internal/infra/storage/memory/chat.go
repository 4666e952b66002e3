package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"marketchat/internal/domain/chat"
)

// ChatStore keeps rooms and message logs in process memory. Not suitable for production.
type ChatStore struct {
	mu       sync.RWMutex
	rooms    map[chat.RoomID]*chat.Room
	messages map[chat.RoomID][]chat.Message
	changes  *broadcaster

	// Now is the store clock. Defaults to time.Now.
	Now func() time.Time
}

func NewChatStore() *ChatStore {
	return &ChatStore{
		rooms:    make(map[chat.RoomID]*chat.Room),
		messages: make(map[chat.RoomID][]chat.Message),
		changes:  newBroadcaster(),
	}
}

func (s *ChatStore) CreateRoom(ctx context.Context, seed chat.RoomSeed) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	now := s.now()
	room, ok := s.rooms[seed.ID]
	if ok {
		room.UpdatedAt = now
		if room.ContextLabel == "" {
			room.ContextLabel = seed.ContextLabel
		}
	} else {
		room = &chat.Room{
			ID:           seed.ID,
			Participants: seed.Participants,
			ContextKey:   seed.ContextKey,
			ContextLabel: seed.ContextLabel,
			CreatedAt:    now,
			UpdatedAt:    now,
			Unread:       seed.InitialUnread(),
		}
		s.rooms[seed.ID] = room
	}
	participants := room.Participants
	s.mu.Unlock()

	s.changes.notify(roomTopic(seed.ID), participantTopic(participants[0]), participantTopic(participants[1]))
	return !ok, nil
}

func (s *ChatStore) Room(ctx context.Context, id chat.RoomID) (*chat.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, chat.ErrNotFound
	}
	return room.Clone(), nil
}

func (s *ChatStore) RoomsFor(ctx context.Context, participant string, limit int) ([]chat.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]chat.Room, 0)
	for _, room := range s.rooms {
		if room.HasParticipant(participant) {
			out = append(out, *room.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *ChatStore) AppendMessage(ctx context.Context, params chat.AppendParams) (chat.Message, error) {
	if err := ctx.Err(); err != nil {
		return chat.Message{}, err
	}
	s.mu.Lock()
	room, ok := s.rooms[params.RoomID]
	if !ok {
		s.mu.Unlock()
		return chat.Message{}, chat.ErrNotFound
	}
	if !room.HasParticipant(params.SenderID) {
		s.mu.Unlock()
		return chat.Message{}, chat.ErrPermissionDenied
	}

	now := s.now()
	log := s.messages[params.RoomID]
	if n := len(log); n > 0 && !now.After(log[n-1].CreatedAt) {
		now = log[n-1].CreatedAt.Add(time.Millisecond)
	}
	msg := chat.Message{
		ID:        newMessageID(),
		RoomID:    params.RoomID,
		SenderID:  params.SenderID,
		Text:      params.Text,
		CreatedAt: now,
	}
	s.messages[params.RoomID] = append(log, msg)

	room.LastMessageText = msg.Text
	room.LastMessageSender = msg.SenderID
	room.UpdatedAt = now
	if room.Unread == nil {
		room.Unread = make(map[string]int64, 2)
	}
	for _, p := range room.Participants {
		if p == params.SenderID {
			room.Unread[p] = 0
		} else {
			room.Unread[p]++
		}
	}
	participants := room.Participants
	s.mu.Unlock()

	s.changes.notify(roomTopic(params.RoomID), participantTopic(participants[0]), participantTopic(participants[1]))
	return msg, nil
}

func (s *ChatStore) Acknowledge(ctx context.Context, id chat.RoomID, participant string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	room, ok := s.rooms[id]
	if !ok {
		s.mu.Unlock()
		return chat.ErrNotFound
	}
	if !room.HasParticipant(participant) {
		s.mu.Unlock()
		return chat.ErrPermissionDenied
	}
	if room.Unread == nil {
		room.Unread = make(map[string]int64, 2)
	}
	room.Unread[participant] = 0
	if now := s.now(); now.After(room.UpdatedAt) {
		room.UpdatedAt = now
	}
	participants := room.Participants
	s.mu.Unlock()

	s.changes.notify(participantTopic(participants[0]), participantTopic(participants[1]))
	return nil
}

func (s *ChatStore) Messages(ctx context.Context, id chat.RoomID, req chat.PageRequest) ([]chat.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := s.messages[id]
	out := make([]chat.Message, 0, req.Limit+1)
	for i := len(log) - 1; i >= 0 && len(out) <= req.Limit; i-- {
		msg := log[i]
		if !req.Before.IsZero() && !req.Before.Precedes(msg) {
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

func (s *ChatStore) WatchRoom(ctx context.Context, id chat.RoomID) (chat.ChangeStream, error) {
	return s.changes.watch(ctx, roomTopic(id)), nil
}

func (s *ChatStore) WatchParticipant(ctx context.Context, participant string) (chat.ChangeStream, error) {
	return s.changes.watch(ctx, participantTopic(participant)), nil
}

func (s *ChatStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *ChatStore) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func roomTopic(id chat.RoomID) string { return "room:" + string(id) }

func participantTopic(id string) string { return "user:" + id }

var _ chat.Store = (*ChatStore)(nil)
