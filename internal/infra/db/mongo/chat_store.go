package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketchat/internal/domain/chat"
)

const (
	roomsCollection    = "chat_rooms"
	messagesCollection = "chat_messages"
)

// ChatStore keeps rooms and their logs in MongoDB. Appends run in a transaction, so the
// deployment must be a replica set; change streams need one as well. Room and message
// timestamps come from the server clock ($$NOW), never from the calling process.
type ChatStore struct {
	db       *mongo.Database
	rooms    *mongo.Collection
	messages *mongo.Collection
}

func NewChatStore(ctx context.Context, db *mongo.Database) (*ChatStore, error) {
	s := &ChatStore{
		db:       db,
		rooms:    db.Collection(roomsCollection),
		messages: db.Collection(messagesCollection),
	}
	if _, err := s.rooms.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "participants", Value: 1}, {Key: "updated_at", Value: -1}},
	}); err != nil {
		return nil, fmt.Errorf("chat rooms index: %w", err)
	}
	if _, err := s.messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
	}); err != nil {
		return nil, fmt.Errorf("chat messages index: %w", err)
	}
	return s, nil
}

type unreadEntry struct {
	User  string `bson:"user"`
	Count int64  `bson:"count"`
}

type roomDocument struct {
	ID                string        `bson:"_id"`
	Participants      []string      `bson:"participants"`
	ContextKey        string        `bson:"context_key"`
	ContextLabel      string        `bson:"context_label"`
	CreatedAt         time.Time     `bson:"created_at"`
	UpdatedAt         time.Time     `bson:"updated_at"`
	LastMessageAt     time.Time     `bson:"last_message_at,omitempty"`
	LastMessageText   string        `bson:"last_message_text,omitempty"`
	LastMessageSender string        `bson:"last_message_sender,omitempty"`
	Unread            []unreadEntry `bson:"unread"`
}

func (d roomDocument) toDomain() *chat.Room {
	room := &chat.Room{
		ID:                chat.RoomID(d.ID),
		ContextKey:        d.ContextKey,
		ContextLabel:      d.ContextLabel,
		CreatedAt:         d.CreatedAt.UTC(),
		UpdatedAt:         d.UpdatedAt.UTC(),
		LastMessageText:   d.LastMessageText,
		LastMessageSender: d.LastMessageSender,
		Unread:            make(map[string]int64, len(d.Unread)),
	}
	if len(d.Participants) == 2 {
		room.Participants = [2]string{d.Participants[0], d.Participants[1]}
	}
	for _, u := range d.Unread {
		room.Unread[u.User] = u.Count
	}
	return room
}

type messageDocument struct {
	ID        string    `bson:"_id"`
	RoomID    string    `bson:"room_id"`
	SenderID  string    `bson:"sender_id"`
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d messageDocument) toDomain() chat.Message {
	return chat.Message{
		ID:        d.ID,
		RoomID:    chat.RoomID(d.RoomID),
		SenderID:  d.SenderID,
		Text:      d.Text,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// CreateRoom is a single upsert: concurrent first opens of the same id converge on one
// document and exactly one of them reports created.
func (s *ChatStore) CreateRoom(ctx context.Context, seed chat.RoomSeed) (bool, error) {
	pipeline := createPipeline(seed)
	opts := options.Update().SetUpsert(true)
	for attempt := 0; ; attempt++ {
		res, err := s.rooms.UpdateOne(ctx, bson.M{"_id": string(seed.ID)}, pipeline, opts)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) && attempt == 0 {
				continue
			}
			return false, transient(err)
		}
		return res.UpsertedCount == 1, nil
	}
}

func (s *ChatStore) Room(ctx context.Context, id chat.RoomID) (*chat.Room, error) {
	var doc roomDocument
	if err := s.rooms.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, chat.ErrNotFound
		}
		return nil, transient(err)
	}
	return doc.toDomain(), nil
}

func (s *ChatStore) RoomsFor(ctx context.Context, participant string, limit int) ([]chat.Room, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.rooms.Find(ctx, bson.M{"participants": participant}, opts)
	if err != nil {
		return nil, transient(err)
	}
	var docs []roomDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, transient(err)
	}
	out := make([]chat.Room, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.toDomain())
	}
	return out, nil
}

// AppendMessage updates the room and inserts the message in one transaction. The room
// filter includes the sender, so a non-participant matches nothing and nothing is written.
// Message timestamps within a room strictly increase.
func (s *ChatStore) AppendMessage(ctx context.Context, params chat.AppendParams) (chat.Message, error) {
	sess, err := s.db.Client().StartSession()
	if err != nil {
		return chat.Message{}, transient(err)
	}
	defer sess.EndSession(ctx)

	pipeline := appendPipeline(params.Text, params.SenderID)
	out, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var room roomDocument
		err := s.rooms.FindOneAndUpdate(sc,
			bson.M{"_id": string(params.RoomID), "participants": params.SenderID},
			pipeline,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&room)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, s.missingOrForbidden(sc, params.RoomID)
			}
			return nil, err
		}
		doc := messageDocument{
			ID:        primitive.NewObjectID().Hex(),
			RoomID:    string(params.RoomID),
			SenderID:  params.SenderID,
			Text:      params.Text,
			CreatedAt: room.LastMessageAt,
		}
		if _, err := s.messages.InsertOne(sc, doc); err != nil {
			return nil, err
		}
		return doc, nil
	})
	if err != nil {
		if errors.Is(err, chat.ErrNotFound) || errors.Is(err, chat.ErrPermissionDenied) {
			return chat.Message{}, err
		}
		return chat.Message{}, transient(err)
	}
	return out.(messageDocument).toDomain(), nil
}

// Acknowledge zeroes participant's counter and refreshes updated_at.
func (s *ChatStore) Acknowledge(ctx context.Context, id chat.RoomID, participant string) error {
	res, err := s.rooms.UpdateOne(ctx,
		bson.M{"_id": string(id), "participants": participant},
		acknowledgePipeline(participant),
	)
	if err != nil {
		return transient(err)
	}
	if res.MatchedCount == 0 {
		return s.missingOrForbidden(ctx, id)
	}
	return nil
}

func (s *ChatStore) Messages(ctx context.Context, id chat.RoomID, req chat.PageRequest) ([]chat.Message, error) {
	filter := bson.M{"room_id": string(id)}
	if !req.Before.IsZero() {
		before := req.Before.CreatedAt.UTC()
		filter["$or"] = bson.A{
			bson.M{"created_at": bson.M{"$lt": before}},
			bson.M{"created_at": before, "_id": bson.M{"$lt": req.Before.ID}},
		}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(req.Limit + 1))
	cur, err := s.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, transient(err)
	}
	var docs []messageDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, transient(err)
	}
	out := make([]chat.Message, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *ChatStore) WatchRoom(ctx context.Context, id chat.RoomID) (chat.ChangeStream, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.M{
		"operationType":        "insert",
		"fullDocument.room_id": string(id),
	}}}}
	return s.watch(ctx, s.messages, pipeline, options.ChangeStream())
}

func (s *ChatStore) WatchParticipant(ctx context.Context, participant string) (chat.ChangeStream, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.M{
		"operationType":             bson.M{"$in": bson.A{"insert", "update", "replace"}},
		"fullDocument.participants": participant,
	}}}}
	return s.watch(ctx, s.rooms, pipeline, options.ChangeStream().SetFullDocument(options.UpdateLookup))
}

func (s *ChatStore) watch(ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline, opts *options.ChangeStreamOptions) (chat.ChangeStream, error) {
	stream, err := watch(ctx, col, pipeline, opts)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (s *ChatStore) Ping(ctx context.Context) error {
	return transient(s.db.Client().Ping(ctx, nil))
}

func (s *ChatStore) missingOrForbidden(ctx context.Context, id chat.RoomID) error {
	n, err := s.rooms.CountDocuments(ctx, bson.M{"_id": string(id)}, options.Count().SetLimit(1))
	if err != nil {
		return transient(err)
	}
	if n == 0 {
		return chat.ErrNotFound
	}
	return chat.ErrPermissionDenied
}

// literal keeps user supplied values from being read as field paths or operators.
func literal(v any) bson.M {
	return bson.M{"$literal": v}
}

// serverNow is the server's clock at the start of the operation, in milliseconds.
const serverNow = "$$NOW"

// laterOf keeps field from moving backwards when the server clock does.
func laterOf(field string) bson.M {
	return bson.M{"$max": bson.A{bson.M{"$ifNull": bson.A{field, serverNow}}, serverNow}}
}

func createPipeline(seed chat.RoomSeed) mongo.Pipeline {
	initial := bson.A{
		bson.M{"user": seed.Participants[0], "count": 0},
		bson.M{"user": seed.Participants[1], "count": 0},
	}
	return mongo.Pipeline{{{Key: "$set", Value: bson.M{
		"participants": bson.M{"$ifNull": bson.A{"$participants", literal(bson.A{seed.Participants[0], seed.Participants[1]})}},
		"context_key":  bson.M{"$ifNull": bson.A{"$context_key", literal(seed.ContextKey)}},
		"context_label": bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{bson.M{"$ifNull": bson.A{"$context_label", ""}}, ""}},
			literal(seed.ContextLabel),
			"$context_label",
		}},
		"created_at": bson.M{"$ifNull": bson.A{"$created_at", serverNow}},
		"updated_at": laterOf("$updated_at"),
		"unread":     bson.M{"$ifNull": bson.A{"$unread", literal(initial)}},
	}}}}
}

// appendPipeline claims a message timestamp strictly after the room's previous one, moves
// the preview and bumps the counterpart's counter while zeroing the sender's.
func appendPipeline(text, sender string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"last_message_at": bson.M{"$cond": bson.A{
				bson.M{"$gt": bson.A{"$last_message_at", nil}},
				bson.M{"$max": bson.A{bson.M{"$add": bson.A{"$last_message_at", 1}}, serverNow}},
				serverNow,
			}},
		}}},
		{{Key: "$set", Value: bson.M{
			"updated_at":          bson.M{"$max": bson.A{"$updated_at", "$last_message_at"}},
			"last_message_text":   literal(text),
			"last_message_sender": literal(sender),
			"unread":              unreadMap(sender, bson.M{"$add": bson.A{"$$u.count", 1}}),
		}}},
	}
}

func acknowledgePipeline(participant string) mongo.Pipeline {
	return mongo.Pipeline{{{Key: "$set", Value: bson.M{
		"updated_at": laterOf("$updated_at"),
		"unread":     unreadMap(participant, "$$u.count"),
	}}}}
}

// unreadMap zeroes user's entry and rewrites every other entry with other.
func unreadMap(user string, other any) bson.M {
	return bson.M{"$map": bson.M{
		"input": "$unread",
		"as":    "u",
		"in": bson.M{
			"user": "$$u.user",
			"count": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$$u.user", literal(user)}},
				0,
				other,
			}},
		},
	}}
}

var _ chat.Store = (*ChatStore)(nil)
