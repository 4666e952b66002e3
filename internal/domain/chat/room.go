package chat

import (
	"sort"
	"strings"
	"time"
)

// Caller is the verified identity performing an operation. Credential is the bearer token
// it was verified from; remote transports forward it unchanged.
type Caller struct {
	UserID     string
	Credential string
}

// Authenticated reports whether the caller carries an identity.
func (c Caller) Authenticated() bool {
	return strings.TrimSpace(c.UserID) != ""
}

// RoomContext carries the listing a room is about. Both fields are opaque.
type RoomContext struct {
	ListingID    string
	ListingTitle string
}

// Room is the persisted identity and metadata of a two-party conversation.
type Room struct {
	ID                RoomID
	Participants      [2]string
	ContextKey        string
	ContextLabel      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastMessageText   string
	LastMessageSender string
	Unread            map[string]int64
}

// HasParticipant reports whether userID is one of the two participants.
func (r *Room) HasParticipant(userID string) bool {
	return userID != "" && (r.Participants[0] == userID || r.Participants[1] == userID)
}

// Counterpart returns the other participant, or "" if userID is not a participant.
func (r *Room) Counterpart(userID string) string {
	switch userID {
	case r.Participants[0]:
		return r.Participants[1]
	case r.Participants[1]:
		return r.Participants[0]
	default:
		return ""
	}
}

// UnreadFor returns the unread counter of userID.
func (r *Room) UnreadFor(userID string) int64 {
	if r.Unread == nil {
		return 0
	}
	return r.Unread[userID]
}

// Clone returns a deep copy safe to hand out of a store.
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	out := *r
	out.Unread = make(map[string]int64, len(r.Unread))
	for k, v := range r.Unread {
		out.Unread[k] = v
	}
	return &out
}

// RoomSeed is the creation payload of a room.
type RoomSeed struct {
	ID           RoomID
	Participants [2]string
	ContextKey   string
	ContextLabel string
}

// NewRoomSeed validates participants against the derived id.
func NewRoomSeed(id RoomID, a, b string, rc RoomContext) (RoomSeed, error) {
	expected, err := ResolveRoomID(a, b, rc.ListingID)
	if err != nil {
		return RoomSeed{}, err
	}
	if expected != id {
		return RoomSeed{}, ErrRoomMismatch
	}
	first, second, _ := SortParticipants(a, b)
	return RoomSeed{
		ID:           id,
		Participants: [2]string{first, second},
		ContextKey:   strings.TrimSpace(rc.ListingID),
		ContextLabel: strings.TrimSpace(rc.ListingTitle),
	}, nil
}

// InitialUnread returns the ledger of a freshly created room.
func (s RoomSeed) InitialUnread() map[string]int64 {
	return map[string]int64{s.Participants[0]: 0, s.Participants[1]: 0}
}

// RoomSummary is a room as seen by one participant.
type RoomSummary struct {
	Room        Room
	Counterpart string
	UnreadCount int64
}

// Summarize projects rooms for viewer, ordered by UpdatedAt desc then id asc.
func Summarize(rooms []Room, viewer string) []RoomSummary {
	out := make([]RoomSummary, 0, len(rooms))
	for i := range rooms {
		room := rooms[i]
		if !room.HasParticipant(viewer) {
			continue
		}
		out = append(out, RoomSummary{
			Room:        room,
			Counterpart: room.Counterpart(viewer),
			UnreadCount: room.UnreadFor(viewer),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Room, out[j].Room
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID < b.ID
	})
	return out
}
