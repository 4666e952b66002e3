package chatv1

import (
	"sort"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	domainchat "marketchat/internal/domain/chat"
)

func ToProtoRoom(room *domainchat.Room) *Room {
	if room == nil {
		return nil
	}
	out := &Room{
		Id:                  string(room.ID),
		Participants:        []string{room.Participants[0], room.Participants[1]},
		ContextKey:          room.ContextKey,
		ContextLabel:        room.ContextLabel,
		CreatedAt:           tsOrNil(room.CreatedAt),
		UpdatedAt:           tsOrNil(room.UpdatedAt),
		LastMessageText:     room.LastMessageText,
		LastMessageSenderId: room.LastMessageSender,
		Unread:              make([]*UnreadCount, 0, len(room.Unread)),
	}
	for userID, count := range room.Unread {
		out.Unread = append(out.Unread, &UnreadCount{UserId: userID, Count: count})
	}
	sort.Slice(out.Unread, func(i, j int) bool { return out.Unread[i].UserId < out.Unread[j].UserId })
	return out
}

func FromProtoRoom(room *Room) *domainchat.Room {
	if room == nil {
		return nil
	}
	out := &domainchat.Room{
		ID:                domainchat.RoomID(room.GetId()),
		ContextKey:        room.GetContextKey(),
		ContextLabel:      room.GetContextLabel(),
		CreatedAt:         timeOrZero(room.GetCreatedAt()),
		UpdatedAt:         timeOrZero(room.GetUpdatedAt()),
		LastMessageText:   room.GetLastMessageText(),
		LastMessageSender: room.GetLastMessageSenderId(),
		Unread:            make(map[string]int64, len(room.GetUnread())),
	}
	if p := room.GetParticipants(); len(p) == 2 {
		out.Participants = [2]string{p[0], p[1]}
	}
	for _, u := range room.GetUnread() {
		out.Unread[u.GetUserId()] = u.GetCount()
	}
	return out
}

func ToProtoSummaries(rooms []domainchat.RoomSummary) []*RoomSummary {
	out := make([]*RoomSummary, 0, len(rooms))
	for i := range rooms {
		out = append(out, &RoomSummary{
			Room:          ToProtoRoom(&rooms[i].Room),
			CounterpartId: rooms[i].Counterpart,
			UnreadCount:   rooms[i].UnreadCount,
		})
	}
	return out
}

func FromProtoSummaries(rooms []*RoomSummary) []domainchat.RoomSummary {
	out := make([]domainchat.RoomSummary, 0, len(rooms))
	for _, item := range rooms {
		summary := domainchat.RoomSummary{
			Counterpart: item.GetCounterpartId(),
			UnreadCount: item.GetUnreadCount(),
		}
		if room := FromProtoRoom(item.GetRoom()); room != nil {
			summary.Room = *room
		}
		out = append(out, summary)
	}
	return out
}

func ToProtoMessage(msg domainchat.Message) *Message {
	return &Message{
		Id:        msg.ID,
		RoomId:    string(msg.RoomID),
		SenderId:  msg.SenderID,
		Text:      msg.Text,
		CreatedAt: tsOrNil(msg.CreatedAt),
	}
}

func ToProtoMessages(messages []domainchat.Message) []*Message {
	out := make([]*Message, 0, len(messages))
	for _, msg := range messages {
		out = append(out, ToProtoMessage(msg))
	}
	return out
}

func FromProtoMessage(msg *Message) domainchat.Message {
	return domainchat.Message{
		ID:        msg.GetId(),
		RoomID:    domainchat.RoomID(msg.GetRoomId()),
		SenderID:  msg.GetSenderId(),
		Text:      msg.GetText(),
		CreatedAt: timeOrZero(msg.GetCreatedAt()),
	}
}

func FromProtoMessages(messages []*Message) []domainchat.Message {
	out := make([]domainchat.Message, 0, len(messages))
	for _, msg := range messages {
		out = append(out, FromProtoMessage(msg))
	}
	return out
}

func tsOrNil(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timeOrZero(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
