package chat

import "context"

// Store persists rooms, their message logs and unread ledgers. Implementations must make
// CreateRoom a single atomic create-or-merge, verify membership inside AppendMessage, and
// express ledger changes as deltas.
type Store interface {
	// CreateRoom creates the room if absent. On an existing room it only refreshes
	// UpdatedAt and fills an empty ContextLabel. It reports whether a room was created.
	CreateRoom(ctx context.Context, seed RoomSeed) (bool, error)
	Room(ctx context.Context, id RoomID) (*Room, error)
	RoomsFor(ctx context.Context, participant string, limit int) ([]Room, error)

	// AppendMessage writes the message with a store-assigned timestamp, refreshes the room
	// preview, increments every other participant's counter and zeroes the sender's.
	// A sender outside the room yields ErrPermissionDenied and changes nothing.
	AppendMessage(ctx context.Context, params AppendParams) (Message, error)
	// Acknowledge zeroes participant's own counter.
	Acknowledge(ctx context.Context, id RoomID, participant string) error
	// Messages returns up to limit+1 messages older than req.Before, newest first.
	Messages(ctx context.Context, id RoomID, req PageRequest) ([]Message, error)

	WatchRoom(ctx context.Context, id RoomID) (ChangeStream, error)
	WatchParticipant(ctx context.Context, participant string) (ChangeStream, error)

	Ping(ctx context.Context) error
}

// ChangeStream signals that watched data changed. Signals are coalesced; consumers
// re-read state on each one. Changes is closed when the stream ends; Err explains why.
type ChangeStream interface {
	Changes() <-chan struct{}
	Err() error
	Close() error
}
