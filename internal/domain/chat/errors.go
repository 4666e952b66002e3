package chat

import (
	"context"
	"errors"
)

var (
	ErrSameParticipant     = errors.New("chat: participants must be distinct")
	ErrParticipantRequired = errors.New("chat: participant id is required")
	ErrInvalidIdentifier   = errors.New("chat: identifier contains reserved separator")
	ErrUnauthenticated     = errors.New("chat: authentication required")
	ErrPermissionDenied    = errors.New("chat: permission denied")
	ErrNotFound            = errors.New("chat: room not found")
	ErrTransient           = errors.New("chat: temporarily unavailable")
	ErrEmptyText           = errors.New("chat: message text is required")
	ErrTextTooLong         = errors.New("chat: message text too long")
	ErrRoomMismatch        = errors.New("chat: room id does not match participants")
	ErrInvalidCursor       = errors.New("chat: invalid cursor")
)

// IsTransient reports whether err is worth retrying by the caller.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTransient) ||
		errors.Is(err, context.DeadlineExceeded)
}

// IsValidation reports whether err is a caller input problem.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrSameParticipant),
		errors.Is(err, ErrParticipantRequired),
		errors.Is(err, ErrInvalidIdentifier),
		errors.Is(err, ErrEmptyText),
		errors.Is(err, ErrTextTooLong),
		errors.Is(err, ErrRoomMismatch),
		errors.Is(err, ErrInvalidCursor):
		return true
	default:
		return false
	}
}
