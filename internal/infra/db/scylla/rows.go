package scylla

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"

	"marketchat/internal/domain/chat"
)

// roomRow is a rooms row as read with serial consistency.
type roomRow struct {
	room          chat.Room
	lastMessageAt time.Time
	// unread is the ledger exactly as stored, used as the expected value of conditional writes.
	unread map[string]int64
}

// roomAppend is the part of a rooms row an append rewrites.
type roomAppend struct {
	at     time.Time
	text   string
	sender string
	unread map[string]int64
}

// roomRows reads and conditionally rewrites rooms rows. A write applies only if the row
// still matches prev.
type roomRows interface {
	load(ctx context.Context, id chat.RoomID) (*roomRow, error)
	casAppend(ctx context.Context, prev *roomRow, next roomAppend) (bool, error)
	casUnread(ctx context.Context, prev *roomRow, unread map[string]int64, at time.Time) (bool, error)
}

type cqlRows struct {
	session *gocql.Session
}

func (r cqlRows) load(ctx context.Context, id chat.RoomID) (*roomRow, error) {
	var (
		row          roomRow
		participants []string
	)
	err := r.session.
		Query(`SELECT participants, context_key, context_label, created_at, updated_at, last_message_at, last_message_text, last_message_sender, unread FROM rooms WHERE id = ?`, string(id)).
		WithContext(ctx).
		Consistency(gocql.Consistency(gocql.Serial)).
		Scan(&participants, &row.room.ContextKey, &row.room.ContextLabel, &row.room.CreatedAt, &row.room.UpdatedAt,
			&row.lastMessageAt, &row.room.LastMessageText, &row.room.LastMessageSender, &row.unread)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, chat.ErrNotFound
		}
		return nil, transient(err)
	}
	row.room.ID = id
	if len(participants) == 2 {
		row.room.Participants = [2]string{participants[0], participants[1]}
	}
	row.room.CreatedAt = row.room.CreatedAt.UTC()
	row.room.UpdatedAt = row.room.UpdatedAt.UTC()
	row.lastMessageAt = row.lastMessageAt.UTC()
	row.room.Unread = map[string]int64{row.room.Participants[0]: 0, row.room.Participants[1]: 0}
	for p, c := range row.unread {
		row.room.Unread[p] = c
	}
	return &row, nil
}

func (r cqlRows) casAppend(ctx context.Context, prev *roomRow, next roomAppend) (bool, error) {
	applied, err := r.session.
		Query(`UPDATE rooms SET last_message_at = ?, updated_at = ?, last_message_text = ?, last_message_sender = ?, unread = ? WHERE id = ? IF last_message_at = ? AND unread = ?`,
			next.at, next.at, next.text, next.sender, next.unread, string(prev.room.ID), prev.lastMessageAt, storedLedger(prev.unread)).
		WithContext(ctx).
		MapScanCAS(map[string]interface{}{})
	return applied, transient(err)
}

func (r cqlRows) casUnread(ctx context.Context, prev *roomRow, unread map[string]int64, at time.Time) (bool, error) {
	applied, err := r.session.
		Query(`UPDATE rooms SET unread = ?, updated_at = ? WHERE id = ? IF unread = ?`,
			unread, at, string(prev.room.ID), storedLedger(prev.unread)).
		WithContext(ctx).
		MapScanCAS(map[string]interface{}{})
	return applied, transient(err)
}

// storedLedger maps an empty ledger to null, which is how the column reads back.
func storedLedger(unread map[string]int64) map[string]int64 {
	if len(unread) == 0 {
		return nil
	}
	return unread
}
