package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeOrdersByActivity(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rooms := []Room{
		{ID: "a|u1", Participants: [2]string{"a", "u1"}, UpdatedAt: at},
		{ID: "L1|u1|u2", Participants: [2]string{"u1", "u2"}, UpdatedAt: at.Add(time.Minute), Unread: map[string]int64{"u1": 3}},
		{ID: "b|u1", Participants: [2]string{"b", "u1"}, UpdatedAt: at},
		{ID: "x|y", Participants: [2]string{"x", "y"}, UpdatedAt: at.Add(time.Hour)},
	}

	got := Summarize(rooms, "u1")
	require.Len(t, got, 3)
	assert.Equal(t, RoomID("L1|u1|u2"), got[0].Room.ID)
	assert.Equal(t, "u2", got[0].Counterpart)
	assert.Equal(t, int64(3), got[0].UnreadCount)
	assert.Equal(t, RoomID("a|u1"), got[1].Room.ID)
	assert.Equal(t, RoomID("b|u1"), got[2].Room.ID)
	assert.Equal(t, "b", got[2].Counterpart)
}

func TestRoomCloneIsDeep(t *testing.T) {
	room := &Room{ID: "u1|u2", Participants: [2]string{"u1", "u2"}, Unread: map[string]int64{"u1": 1}}
	clone := room.Clone()
	clone.Unread["u1"] = 9

	assert.Equal(t, int64(1), room.UnreadFor("u1"))
	assert.True(t, clone.HasParticipant("u2"))
	assert.False(t, clone.HasParticipant(""))
	assert.Empty(t, clone.Counterpart("u3"))
	assert.Nil(t, (*Room)(nil).Clone())
}
