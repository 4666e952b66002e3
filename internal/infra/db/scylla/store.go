package scylla

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/gocql/gocql"

	"marketchat/internal/domain/chat"
)

// casAttempts bounds the compare-and-set loops on the rooms row.
const casAttempts = 8

// ChatStore keeps rooms in Scylla. Every write to a rooms row is a lightweight transaction:
// appends claim the next timestamp and rewrite the unread ledger in one conditional update,
// and acknowledgements rewrite the ledger only if nobody changed it since it was read.
type ChatStore struct {
	session      *gocql.Session
	rows         roomRows
	logger       *slog.Logger
	PollInterval time.Duration
	Now          func() time.Time
}

func NewChatStore(session *gocql.Session, pollInterval time.Duration, logger *slog.Logger) *ChatStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatStore{session: session, rows: cqlRows{session: session}, logger: logger, PollInterval: pollInterval}
}

func (s *ChatStore) CreateRoom(ctx context.Context, seed chat.RoomSeed) (bool, error) {
	now := s.now()
	participants := []string{seed.Participants[0], seed.Participants[1]}
	unread := map[string]int64{seed.Participants[0]: 0, seed.Participants[1]: 0}
	existing := map[string]interface{}{}
	applied, err := s.session.
		Query(`INSERT INTO rooms (id, participants, context_key, context_label, created_at, updated_at, last_message_at, unread) VALUES (?, ?, ?, ?, ?, ?, ?, ?) IF NOT EXISTS`,
			string(seed.ID), participants, seed.ContextKey, seed.ContextLabel, now, now, now, unread).
		WithContext(ctx).
		MapScanCAS(existing)
	if err != nil {
		return false, transient(err)
	}
	if !applied {
		if err := s.touchRoom(ctx, seed, existing, now); err != nil {
			return false, err
		}
	}
	// re-run on every ensure so a half-finished create heals itself
	if err := s.ensureMembership(ctx, seed.ID, participants); err != nil {
		return false, err
	}
	return applied, nil
}

// touchRoom records activity on an existing room and fills a missing context label.
func (s *ChatStore) touchRoom(ctx context.Context, seed chat.RoomSeed, existing map[string]interface{}, now time.Time) error {
	label, _ := existing["context_label"].(string)
	stmt, args := touchStatement(seed, label, now)
	if _, err := s.session.Query(stmt, args...).WithContext(ctx).MapScanCAS(map[string]interface{}{}); err != nil {
		return transient(err)
	}
	return nil
}

// touchStatement is conditional either way: the rooms row is only ever written through
// lightweight transactions.
func touchStatement(seed chat.RoomSeed, label string, now time.Time) (string, []interface{}) {
	if label == "" && seed.ContextLabel != "" {
		return `UPDATE rooms SET updated_at = ?, context_label = ? WHERE id = ? IF context_label = ?`,
			[]interface{}{now, seed.ContextLabel, string(seed.ID), ""}
	}
	return `UPDATE rooms SET updated_at = ? WHERE id = ? IF EXISTS`, []interface{}{now, string(seed.ID)}
}

func (s *ChatStore) ensureMembership(ctx context.Context, id chat.RoomID, participants []string) error {
	batch := s.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	for _, p := range participants {
		batch.Query(`INSERT INTO room_members (participant, room_id) VALUES (?, ?)`, p, string(id))
	}
	if err := s.session.ExecuteBatch(batch); err != nil {
		return transient(err)
	}
	return nil
}

func (s *ChatStore) Room(ctx context.Context, id chat.RoomID) (*chat.Room, error) {
	row, err := s.rows.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &row.room, nil
}

func (s *ChatStore) RoomsFor(ctx context.Context, participant string, limit int) ([]chat.Room, error) {
	iter := s.session.
		Query(`SELECT room_id FROM room_members WHERE participant = ?`, participant).
		WithContext(ctx).
		Iter()
	var (
		ids []chat.RoomID
		id  string
	)
	for iter.Scan(&id) {
		ids = append(ids, chat.RoomID(id))
	}
	if err := iter.Close(); err != nil {
		return nil, transient(err)
	}

	rooms := make([]chat.Room, 0, len(ids))
	for _, id := range ids {
		room, err := s.Room(ctx, id)
		if errors.Is(err, chat.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		if !rooms[i].UpdatedAt.Equal(rooms[j].UpdatedAt) {
			return rooms[i].UpdatedAt.After(rooms[j].UpdatedAt)
		}
		return rooms[i].ID < rooms[j].ID
	})
	if limit > 0 && len(rooms) > limit {
		rooms = rooms[:limit]
	}
	return rooms, nil
}

// AppendMessage claims the next timestamp and updates the preview and ledger, then writes
// the message itself.
func (s *ChatStore) AppendMessage(ctx context.Context, params chat.AppendParams) (chat.Message, error) {
	at, err := s.claim(ctx, params)
	if err != nil {
		return chat.Message{}, err
	}
	msg := chat.Message{
		ID:        gocql.TimeUUID().String(),
		RoomID:    params.RoomID,
		SenderID:  params.SenderID,
		Text:      params.Text,
		CreatedAt: at,
	}
	if err := s.session.
		Query(`INSERT INTO messages (room_id, created_at, id, sender_id, text) VALUES (?, ?, ?, ?, ?)`,
			string(msg.RoomID), msg.CreatedAt, msg.ID, msg.SenderID, msg.Text).
		WithContext(ctx).
		Exec(); err != nil {
		return chat.Message{}, transient(err)
	}
	return msg, nil
}

// claim moves last_message_at strictly forward. The counterpart's unread count goes up by
// one and the sender's drops to zero in the same conditional update.
func (s *ChatStore) claim(ctx context.Context, params chat.AppendParams) (time.Time, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		row, err := s.rows.load(ctx, params.RoomID)
		if err != nil {
			return time.Time{}, err
		}
		if !row.room.HasParticipant(params.SenderID) {
			return time.Time{}, chat.ErrPermissionDenied
		}
		at := s.now()
		if !at.After(row.lastMessageAt) {
			at = row.lastMessageAt.Add(time.Millisecond)
		}
		unread := ledger(row)
		unread[row.room.Counterpart(params.SenderID)]++
		unread[params.SenderID] = 0
		applied, err := s.rows.casAppend(ctx, row, roomAppend{
			at:     at,
			text:   params.Text,
			sender: params.SenderID,
			unread: unread,
		})
		if err != nil {
			return time.Time{}, err
		}
		if applied {
			return at, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: room %s is contended", chat.ErrTransient, params.RoomID)
}

func (s *ChatStore) Acknowledge(ctx context.Context, id chat.RoomID, participant string) error {
	for attempt := 0; attempt < casAttempts; attempt++ {
		row, err := s.rows.load(ctx, id)
		if err != nil {
			return err
		}
		if !row.room.HasParticipant(participant) {
			return chat.ErrPermissionDenied
		}
		at := s.now()
		if at.Before(row.room.UpdatedAt) {
			at = row.room.UpdatedAt
		}
		unread := ledger(row)
		unread[participant] = 0
		applied, err := s.rows.casUnread(ctx, row, unread, at)
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
	}
	return fmt.Errorf("%w: room %s is contended", chat.ErrTransient, id)
}

// ledger copies the row's unread counts with both participants present.
func ledger(row *roomRow) map[string]int64 {
	out := make(map[string]int64, 2)
	for _, p := range row.room.Participants {
		out[p] = row.room.UnreadFor(p)
	}
	return out
}

func (s *ChatStore) Messages(ctx context.Context, id chat.RoomID, req chat.PageRequest) ([]chat.Message, error) {
	var q *gocql.Query
	if req.Before.IsZero() {
		q = s.session.Query(`SELECT created_at, id, sender_id, text FROM messages WHERE room_id = ? LIMIT ?`,
			string(id), req.Limit+1)
	} else {
		q = s.session.Query(`SELECT created_at, id, sender_id, text FROM messages WHERE room_id = ? AND (created_at, id) < (?, ?) LIMIT ?`,
			string(id), req.Before.CreatedAt.UTC(), req.Before.ID, req.Limit+1)
	}
	iter := q.WithContext(ctx).Iter()
	out := make([]chat.Message, 0, req.Limit+1)
	var m chat.Message
	for iter.Scan(&m.CreatedAt, &m.ID, &m.SenderID, &m.Text) {
		m.RoomID = id
		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}
	if err := iter.Close(); err != nil {
		return nil, transient(err)
	}
	return out, nil
}

func (s *ChatStore) WatchRoom(ctx context.Context, id chat.RoomID) (chat.ChangeStream, error) {
	sample := func(ctx context.Context) (string, error) {
		var (
			at  time.Time
			mid string
		)
		err := s.session.
			Query(`SELECT created_at, id FROM messages WHERE room_id = ? LIMIT 1`, string(id)).
			WithContext(ctx).
			Scan(&at, &mid)
		if errors.Is(err, gocql.ErrNotFound) {
			return "", nil
		}
		return mid, transient(err)
	}
	return s.poll(ctx, sample)
}

func (s *ChatStore) WatchParticipant(ctx context.Context, participant string) (chat.ChangeStream, error) {
	sample := func(ctx context.Context) (string, error) {
		rooms, err := s.RoomsFor(ctx, participant, 0)
		if err != nil {
			return "", err
		}
		return fingerprint(rooms), nil
	}
	return s.poll(ctx, sample)
}

func (s *ChatStore) poll(ctx context.Context, sample sampleFunc) (chat.ChangeStream, error) {
	stream, err := poll(ctx, s.PollInterval, sample, s.logger)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (s *ChatStore) Ping(ctx context.Context) error {
	return transient(s.session.Query(`SELECT now() FROM system.local`).WithContext(ctx).Exec())
}

func (s *ChatStore) now() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().UTC().Truncate(time.Millisecond)
}

// transient marks coordinator and connection failures a caller may retry.
func transient(err error) error {
	if err == nil {
		return nil
	}
	var (
		unavailable  *gocql.RequestErrUnavailable
		writeTimeout *gocql.RequestErrWriteTimeout
		readTimeout  *gocql.RequestErrReadTimeout
	)
	switch {
	case errors.As(err, &unavailable), errors.As(err, &writeTimeout), errors.As(err, &readTimeout),
		errors.Is(err, gocql.ErrNoConnections), errors.Is(err, gocql.ErrTimeoutNoResponse),
		errors.Is(err, gocql.ErrConnectionClosed), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", chat.ErrTransient, err)
	}
	return err
}

var _ chat.Store = (*ChatStore)(nil)
