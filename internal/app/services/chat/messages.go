package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketchat/internal/app/idempotency"
	domainchat "marketchat/internal/domain/chat"
)

// SendMessage appends text to the room as the caller. With an idempotency key, a repeated
// call returns the originally stored message instead of appending again.
func (s *Service) SendMessage(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, text string, opts SendOptions) (domainchat.Message, error) {
	if err := s.ensureDependencies(); err != nil {
		return domainchat.Message{}, err
	}
	if !caller.Authenticated() {
		return domainchat.Message{}, domainchat.ErrUnauthenticated
	}
	if _, _, _, ok := id.Parts(); !ok {
		return domainchat.Message{}, domainchat.ErrInvalidIdentifier
	}
	text, err := domainchat.NormalizeText(text, s.limits().MaxMessageLength)
	if err != nil {
		return domainchat.Message{}, err
	}

	key := strings.TrimSpace(opts.IdempotencyKey)
	if key == "" || s.Idempotency == nil {
		return s.appendMessage(ctx, caller, id, text)
	}

	scoped := idempotency.ScopedKey("chat.send", caller.UserID, string(id), key)
	unlock := s.lockKey(scoped)
	defer unlock()

	rec, found, err := s.Idempotency.Get(ctx, scoped)
	if err != nil {
		return domainchat.Message{}, fmt.Errorf("idempotency lookup: %w", err)
	}
	if found {
		var msg domainchat.Message
		if err := (idempotency.JSONResultCodec{}).Decode(rec.Payload, &msg); err != nil {
			return domainchat.Message{}, fmt.Errorf("idempotency decode: %w", err)
		}
		return msg, nil
	}

	msg, err := s.appendMessage(ctx, caller, id, text)
	if err != nil {
		return domainchat.Message{}, err
	}
	payload, err := (idempotency.JSONResultCodec{}).Encode(msg)
	if err == nil {
		err = s.Idempotency.Save(ctx, idempotency.Record{Key: scoped, Payload: payload, OccurredAt: msg.CreatedAt})
	}
	if err != nil {
		s.logger().Error("chat idempotency save failed", "error", err, "room_id", id, "message_id", msg.ID)
	}
	return msg, nil
}

func (s *Service) appendMessage(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, text string) (domainchat.Message, error) {
	msg, err := s.Store.AppendMessage(ctx, domainchat.AppendParams{RoomID: id, SenderID: caller.UserID, Text: text})
	if err != nil {
		if errors.Is(err, domainchat.ErrPermissionDenied) {
			s.denied("send", caller, id)
			return domainchat.Message{}, err
		}
		return domainchat.Message{}, fmt.Errorf("send message to %s: %w", id, err)
	}
	_, first, second, _ := id.Parts()
	recipient := first
	if recipient == caller.UserID {
		recipient = second
	}
	s.record(ctx, domainchat.MessageAppended{
		RoomID:    id,
		MessageID: msg.ID,
		SenderID:  msg.SenderID,
		Recipient: recipient,
		At:        msg.CreatedAt,
	})
	return msg, nil
}

// ListMessages returns one page of the room's log in ascending order. Without a cursor it
// is the most recent page; NextCursor continues towards older messages.
func (s *Service) ListMessages(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID, params ListParams) (domainchat.Page, error) {
	if err := s.ensureDependencies(); err != nil {
		return domainchat.Page{}, err
	}
	if !caller.Authenticated() {
		return domainchat.Page{}, domainchat.ErrUnauthenticated
	}
	cursor, err := domainchat.DecodeCursor(params.Cursor)
	if err != nil {
		return domainchat.Page{}, err
	}
	if _, err := s.memberRoom(ctx, caller, id); err != nil {
		return domainchat.Page{}, err
	}
	limits := s.limits()
	limit := params.Limit
	if limit <= 0 {
		limit = limits.PageSize
	}
	if limit > limits.MaxPageSize {
		limit = limits.MaxPageSize
	}
	desc, err := s.Store.Messages(ctx, id, domainchat.PageRequest{Limit: limit, Before: cursor})
	if err != nil {
		return domainchat.Page{}, fmt.Errorf("list messages of %s: %w", id, err)
	}
	return domainchat.PageFromDescending(desc, limit), nil
}

// AcknowledgeRoom zeroes the caller's unread counter for the room.
func (s *Service) AcknowledgeRoom(ctx context.Context, caller domainchat.Caller, id domainchat.RoomID) error {
	if err := s.ensureDependencies(); err != nil {
		return err
	}
	if !caller.Authenticated() {
		return domainchat.ErrUnauthenticated
	}
	if err := s.Store.Acknowledge(ctx, id, caller.UserID); err != nil {
		if errors.Is(err, domainchat.ErrPermissionDenied) {
			s.denied("acknowledge", caller, id)
			return err
		}
		return fmt.Errorf("acknowledge %s: %w", id, err)
	}
	s.record(ctx, domainchat.RoomAcknowledged{RoomID: id, Participant: caller.UserID, At: s.now()})
	return nil
}

func (s *Service) window(ctx context.Context, id domainchat.RoomID) ([]domainchat.Message, error) {
	size := s.limits().WindowSize
	desc, err := s.Store.Messages(ctx, id, domainchat.PageRequest{Limit: size})
	if err != nil {
		return nil, fmt.Errorf("load window of %s: %w", id, err)
	}
	return domainchat.PageFromDescending(desc, size).Messages, nil
}
