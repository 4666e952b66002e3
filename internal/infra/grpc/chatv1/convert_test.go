package chatv1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	domainchat "marketchat/internal/domain/chat"
)

func TestRoomSurvivesTheWire(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 3_000_000, time.UTC)
	room := &domainchat.Room{
		ID:                "L100|u1|u2",
		Participants:      [2]string{"u1", "u2"},
		ContextKey:        "L100",
		ContextLabel:      "Road bike",
		CreatedAt:         at,
		UpdatedAt:         at.Add(time.Second),
		LastMessageText:   "still for sale?",
		LastMessageSender: "u1",
		Unread:            map[string]int64{"u1": 0, "u2": 2},
	}

	raw, err := proto.Marshal(&RoomResponse{Room: ToProtoRoom(room)})
	require.NoError(t, err)
	var decoded RoomResponse
	require.NoError(t, proto.Unmarshal(raw, &decoded))

	assert.Equal(t, room, FromProtoRoom(decoded.GetRoom()))
	assert.Equal(t, "u1", decoded.GetRoom().GetUnread()[0].GetUserId())
}

func TestMessagesSurviveTheWire(t *testing.T) {
	msgs := []domainchat.Message{
		{ID: "m1", RoomID: "u1|u2", SenderID: "u1", Text: "hi", CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "m2", RoomID: "u1|u2", SenderID: "u2", Text: "hello", CreatedAt: time.Date(2024, 5, 1, 12, 0, 1, 0, time.UTC)},
	}

	raw, err := proto.Marshal(&MessagesSnapshot{Messages: ToProtoMessages(msgs)})
	require.NoError(t, err)
	var decoded MessagesSnapshot
	require.NoError(t, proto.Unmarshal(raw, &decoded))

	assert.Equal(t, msgs, FromProtoMessages(decoded.GetMessages()))
}

func TestMissingTimestampsStayZero(t *testing.T) {
	msg := FromProtoMessage(&Message{Id: "m1", Text: "hi"})
	assert.True(t, msg.CreatedAt.IsZero())
	assert.Nil(t, ToProtoMessage(domainchat.Message{ID: "m1"}).GetCreatedAt())
}
