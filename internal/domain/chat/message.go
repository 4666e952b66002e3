package chat

import (
	"encoding/base64"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultMaxMessageLength bounds message text when no limit is configured.
const DefaultMaxMessageLength = 2000

// Message is an immutable entry of a room's log.
type Message struct {
	ID        string
	RoomID    RoomID
	SenderID  string
	Text      string
	CreatedAt time.Time
}

// AppendParams is the payload of one append. The store assigns id and timestamp.
type AppendParams struct {
	RoomID   RoomID
	SenderID string
	Text     string
}

// NormalizeText trims text and enforces the length limit in runes.
func NormalizeText(text string, maxLen int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxMessageLength
	}
	if utf8.RuneCountInString(text) > maxLen {
		return "", ErrTextTooLong
	}
	return text, nil
}

// Before reports whether a sorts before b: createdAt first, then id lexically.
func (m Message) Before(other Message) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.Before(other.CreatedAt)
	}
	return m.ID < other.ID
}

// Position returns the cursor pointing at m.
func (m Message) Position() Cursor {
	return Cursor{CreatedAt: m.CreatedAt, ID: m.ID}
}

// SortMessages orders messages ascending by (createdAt, id).
func SortMessages(messages []Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Before(messages[j])
	})
}

// Cursor is a position in a room's log.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// IsZero reports whether the cursor is unset.
func (c Cursor) IsZero() bool {
	return c.ID == "" && c.CreatedAt.IsZero()
}

// Precedes reports whether m sorts strictly before the cursor position, i.e. is older.
func (c Cursor) Precedes(m Message) bool {
	return m.Before(Message{CreatedAt: c.CreatedAt, ID: c.ID})
}

// Encode renders the cursor as an opaque token.
func (c Cursor) Encode() string {
	if c.IsZero() {
		return ""
	}
	raw := strconv.FormatInt(c.CreatedAt.UnixNano(), 10) + Separator + c.ID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Cursor.Encode. Empty input yields a zero cursor.
func DecodeCursor(token string) (Cursor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Cursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	nanos, id, ok := strings.Cut(string(raw), Separator)
	if !ok || id == "" {
		return Cursor{}, ErrInvalidCursor
	}
	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{CreatedAt: time.Unix(0, n).UTC(), ID: id}, nil
}

// PageRequest asks for the Limit messages immediately older than Before,
// or the most recent ones when Before is zero.
type PageRequest struct {
	Limit  int
	Before Cursor
}

// Page is a slice of the log ordered ascending.
type Page struct {
	Messages   []Message
	NextCursor string
}

// PageFromDescending builds a page from up to limit+1 messages fetched newest first.
func PageFromDescending(desc []Message, limit int) Page {
	hasMore := len(desc) > limit
	if hasMore {
		desc = desc[:limit]
	}
	out := make([]Message, len(desc))
	for i, msg := range desc {
		out[len(desc)-1-i] = msg
	}
	page := Page{Messages: out}
	if hasMore && len(out) > 0 {
		page.NextCursor = out[0].Position().Encode()
	}
	return page
}
