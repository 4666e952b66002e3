package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoomID(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		context string
		want    RoomID
		wantErr error
	}{
		{name: "listing context", a: "u1", b: "u2", context: "L100", want: "L100|u1|u2"},
		{name: "swapped participants", a: "u2", b: "u1", context: "L100", want: "L100|u1|u2"},
		{name: "no context", a: "bob", b: "alice", want: "alice|bob"},
		{name: "blank context", a: "bob", b: "alice", context: "   ", want: "alice|bob"},
		{name: "trims input", a: " u2 ", b: "u1", context: " L1 ", want: "L1|u1|u2"},
		{name: "byte order", a: "b", b: "B", want: "B|b"},
		{name: "self chat", a: "sellerA", b: "sellerA", context: "L1", wantErr: ErrSameParticipant},
		{name: "self chat after trim", a: "u1 ", b: " u1", wantErr: ErrSameParticipant},
		{name: "self chat with separator", a: "x|y", b: "x|y", wantErr: ErrSameParticipant},
		{name: "empty participant", a: "", b: "u1", wantErr: ErrParticipantRequired},
		{name: "separator in participant", a: "u|1", b: "u2", wantErr: ErrInvalidIdentifier},
		{name: "separator in context", a: "u1", b: "u2", context: "L|1", wantErr: ErrInvalidIdentifier},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveRoomID(tc.a, tc.b, tc.context)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveRoomIDIsSymmetric(t *testing.T) {
	pairs := [][2]string{{"u1", "u2"}, {"seller-9", "buyer-3"}, {"Z", "a"}}
	for _, pair := range pairs {
		forward, err := ResolveRoomID(pair[0], pair[1], "L7")
		require.NoError(t, err)
		backward, err := ResolveRoomID(pair[1], pair[0], "L7")
		require.NoError(t, err)
		assert.Equal(t, forward, backward)

		again, err := ResolveRoomID(pair[0], pair[1], "L7")
		require.NoError(t, err)
		assert.Equal(t, forward, again)
	}
}

func TestRoomIDParts(t *testing.T) {
	ctx, first, second, ok := RoomID("L100|u1|u2").Parts()
	require.True(t, ok)
	assert.Equal(t, "L100", ctx)
	assert.Equal(t, "u1", first)
	assert.Equal(t, "u2", second)

	ctx, first, second, ok = RoomID("a|b").Parts()
	require.True(t, ok)
	assert.Empty(t, ctx)
	assert.Equal(t, "a", first)
	assert.Equal(t, "b", second)

	for _, bad := range []RoomID{"", "a", "b|a", "a|a", "|a|b", "x|a|b|c", "L|a|"} {
		_, _, _, ok := bad.Parts()
		assert.False(t, ok, string(bad))
	}
}

func TestNewRoomSeed(t *testing.T) {
	seed, err := NewRoomSeed("L100|u1|u2", "u2", "u1", RoomContext{ListingID: "L100", ListingTitle: " Bike "})
	require.NoError(t, err)
	assert.Equal(t, [2]string{"u1", "u2"}, seed.Participants)
	assert.Equal(t, "L100", seed.ContextKey)
	assert.Equal(t, "Bike", seed.ContextLabel)
	assert.Equal(t, map[string]int64{"u1": 0, "u2": 0}, seed.InitialUnread())

	_, err = NewRoomSeed("L101|u1|u2", "u1", "u2", RoomContext{ListingID: "L100"})
	assert.ErrorIs(t, err, ErrRoomMismatch)

	_, err = NewRoomSeed("u1|u1", "u1", "u1", RoomContext{})
	assert.ErrorIs(t, err, ErrSameParticipant)
}
