package mongo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"marketchat/internal/domain/chat"
)

func TestTransientClassification(t *testing.T) {
	assert.NoError(t, transient(nil))
	assert.ErrorIs(t, transient(context.DeadlineExceeded), chat.ErrTransient)
	assert.ErrorIs(t, transient(fmt.Errorf("find: %w", context.DeadlineExceeded)), chat.ErrTransient)

	labeled := mongo.CommandError{Code: 112, Message: "write conflict", Labels: []string{"TransientTransactionError"}}
	assert.ErrorIs(t, transient(labeled), chat.ErrTransient)

	plain := errors.New("bad query")
	assert.Equal(t, plain, transient(plain))
	assert.False(t, chat.IsTransient(transient(mongo.CommandError{Code: 2, Message: "bad value"})))
}

func TestRoomDocumentToDomain(t *testing.T) {
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.FixedZone("x", 3600))
	doc := roomDocument{
		ID:              "L1|a|b",
		Participants:    []string{"a", "b"},
		ContextKey:      "L1",
		ContextLabel:    "Lamp",
		CreatedAt:       at,
		UpdatedAt:       at,
		LastMessageText: "hi",
		Unread:          []unreadEntry{{User: "a", Count: 0}, {User: "b", Count: 3}},
	}
	room := doc.toDomain()
	assert.Equal(t, chat.RoomID("L1|a|b"), room.ID)
	assert.Equal(t, [2]string{"a", "b"}, room.Participants)
	assert.Equal(t, int64(3), room.UnreadFor("b"))
	assert.Equal(t, time.UTC, room.UpdatedAt.Location())
	assert.Equal(t, "a", room.Counterpart("b"))
}

func TestLiteralWrapsValues(t *testing.T) {
	assert.Equal(t, "$literal", firstKey(literal("$where")))
}

func firstKey(m map[string]any) string {
	for k := range m {
		return k
	}
	return ""
}

// leaves collects every scalar in a pipeline.
func leaves(v any, out *[]any) {
	switch x := v.(type) {
	case mongo.Pipeline:
		for _, stage := range x {
			leaves(stage, out)
		}
	case bson.D:
		for _, e := range x {
			leaves(e.Value, out)
		}
	case bson.M:
		for _, e := range x {
			leaves(e, out)
		}
	case bson.A:
		for _, e := range x {
			leaves(e, out)
		}
	default:
		*out = append(*out, v)
	}
}

func setFields(t *testing.T, p mongo.Pipeline) []string {
	t.Helper()
	var fields []string
	for _, stage := range p {
		for _, e := range stage {
			require.Equal(t, "$set", e.Key)
			for k := range e.Value.(bson.M) {
				fields = append(fields, k)
			}
		}
	}
	return fields
}

func TestRoomPipelinesUseTheServerClock(t *testing.T) {
	seed := chat.RoomSeed{ID: "L1|a|b", Participants: [2]string{"a", "b"}, ContextKey: "L1", ContextLabel: "Lamp"}
	for name, p := range map[string]mongo.Pipeline{
		"create": createPipeline(seed),
		"append": appendPipeline("hi", "a"),
		"ack":    acknowledgePipeline("b"),
	} {
		var values []any
		leaves(p, &values)
		assert.Contains(t, values, serverNow, name)
		for _, v := range values {
			_, isTime := v.(time.Time)
			assert.False(t, isTime, "%s pipeline carries a process timestamp", name)
		}
		for _, stage := range p {
			_, err := bson.Marshal(stage)
			require.NoError(t, err, name)
		}
	}
}

func TestAcknowledgeRefreshesUpdatedAt(t *testing.T) {
	fields := setFields(t, acknowledgePipeline("b"))
	assert.ElementsMatch(t, []string{"updated_at", "unread"}, fields)
}

func TestAppendMovesPreviewAndLedger(t *testing.T) {
	fields := setFields(t, appendPipeline("hi", "a"))
	assert.ElementsMatch(t, []string{"last_message_at", "updated_at", "last_message_text", "last_message_sender", "unread"}, fields)
}
