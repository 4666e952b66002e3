package chat

import "time"

type RoomCreated struct {
	RoomID       RoomID    `json:"room_id"`
	Participants [2]string `json:"participants"`
	ContextKey   string    `json:"context_key,omitempty"`
	At           time.Time `json:"at"`
}

func (e RoomCreated) EventName() string     { return "chat.room_created" }
func (e RoomCreated) AggregateID() string   { return string(e.RoomID) }
func (e RoomCreated) OccurredAt() time.Time { return e.At }

type MessageAppended struct {
	RoomID    RoomID    `json:"room_id"`
	MessageID string    `json:"message_id"`
	SenderID  string    `json:"sender_id"`
	Recipient string    `json:"recipient_id"`
	At        time.Time `json:"at"`
}

func (e MessageAppended) EventName() string     { return "chat.message_appended" }
func (e MessageAppended) AggregateID() string   { return string(e.RoomID) }
func (e MessageAppended) OccurredAt() time.Time { return e.At }

type RoomAcknowledged struct {
	RoomID      RoomID    `json:"room_id"`
	Participant string    `json:"participant_id"`
	At          time.Time `json:"at"`
}

func (e RoomAcknowledged) EventName() string     { return "chat.room_acknowledged" }
func (e RoomAcknowledged) AggregateID() string   { return string(e.RoomID) }
func (e RoomAcknowledged) OccurredAt() time.Time { return e.At }
