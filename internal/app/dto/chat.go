package dto

import (
	"time"

	domainchat "marketchat/internal/domain/chat"
)

// Room describes chat metadata.
type Room struct {
	ID                string           `json:"id"`
	Participants      []string         `json:"participants"`
	ContextKey        string           `json:"context_key,omitempty"`
	ContextLabel      string           `json:"context_label,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	LastMessageText   string           `json:"last_message_text,omitempty"`
	LastMessageSender string           `json:"last_message_sender_id,omitempty"`
	Unread            map[string]int64 `json:"unread"`
}

// RoomSummary is a room as listed for one participant.
type RoomSummary struct {
	Room        Room   `json:"room"`
	Counterpart string `json:"counterpart_id"`
	UnreadCount int64  `json:"unread_count"`
}

type RoomList struct {
	Items []RoomSummary `json:"items"`
}

type ResolveRoomResponse struct {
	RoomID string `json:"room_id"`
}

type EnsureRoomRequest struct {
	OtherID      string `json:"other_id"`
	ListingID    string `json:"listing_id"`
	ListingTitle string `json:"listing_title"`
}

type EnsureRoomResponse struct {
	RoomID  string `json:"room_id"`
	Created bool   `json:"created"`
}

// ChatMessage contains a single message payload.
type ChatMessage struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessageList is one page of a room's log, oldest first. NextCursor continues
// towards older messages.
type ChatMessageList struct {
	Items      []ChatMessage `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

// ErrorResponse is returned by every failing chat call. A failed send never consumes
// the client's draft: Retryable tells the client whether resubmitting the same text
// may succeed.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Retryable bool   `json:"retryable"`
}

const (
	FrameSnapshot = "snapshot"
	FrameRooms    = "rooms"
	FrameError    = "error"
	FrameAck      = "ack"
)

// Frame is a websocket message pushed to subscribers.
type Frame struct {
	Type     string        `json:"type"`
	Messages []ChatMessage `json:"messages,omitempty"`
	Rooms    []RoomSummary `json:"rooms,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// ClientFrame is a websocket message sent by the browser.
type ClientFrame struct {
	Type string `json:"type"`
}

func MapRoom(room *domainchat.Room) Room {
	if room == nil {
		return Room{}
	}
	unread := make(map[string]int64, len(room.Unread))
	for k, v := range room.Unread {
		unread[k] = v
	}
	return Room{
		ID:                string(room.ID),
		Participants:      []string{room.Participants[0], room.Participants[1]},
		ContextKey:        room.ContextKey,
		ContextLabel:      room.ContextLabel,
		CreatedAt:         room.CreatedAt,
		UpdatedAt:         room.UpdatedAt,
		LastMessageText:   room.LastMessageText,
		LastMessageSender: room.LastMessageSender,
		Unread:            unread,
	}
}

func MapRoomSummaries(rooms []domainchat.RoomSummary) []RoomSummary {
	out := make([]RoomSummary, 0, len(rooms))
	for i := range rooms {
		out = append(out, RoomSummary{
			Room:        MapRoom(&rooms[i].Room),
			Counterpart: rooms[i].Counterpart,
			UnreadCount: rooms[i].UnreadCount,
		})
	}
	return out
}

func MapMessage(msg domainchat.Message) ChatMessage {
	return ChatMessage{
		ID:        msg.ID,
		RoomID:    string(msg.RoomID),
		SenderID:  msg.SenderID,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}

func MapMessages(messages []domainchat.Message) []ChatMessage {
	out := make([]ChatMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, MapMessage(msg))
	}
	return out
}

func MapPage(page domainchat.Page) ChatMessageList {
	return ChatMessageList{Items: MapMessages(page.Messages), NextCursor: page.NextCursor}
}
