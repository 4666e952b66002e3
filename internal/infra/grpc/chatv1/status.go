package chatv1

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	chatsvc "marketchat/internal/app/services/chat"
	domainchat "marketchat/internal/domain/chat"
)

// validation errors travel by their text so the client restores the same sentinel.
var validationErrors = []error{
	domainchat.ErrParticipantRequired,
	domainchat.ErrInvalidIdentifier,
	domainchat.ErrEmptyText,
	domainchat.ErrTextTooLong,
	domainchat.ErrRoomMismatch,
	domainchat.ErrInvalidCursor,
}

// ToStatus maps a chat error onto a gRPC status. Unexpected errors are reported as
// Internal without their text.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, domainchat.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, domainchat.ErrUnauthenticated.Error())
	case errors.Is(err, domainchat.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, domainchat.ErrPermissionDenied.Error())
	case errors.Is(err, domainchat.ErrNotFound):
		return status.Error(codes.NotFound, domainchat.ErrNotFound.Error())
	case errors.Is(err, domainchat.ErrSameParticipant):
		return status.Error(codes.FailedPrecondition, domainchat.ErrSameParticipant.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case domainchat.IsTransient(err), errors.Is(err, chatsvc.ErrServiceNotConfigured):
		return status.Error(codes.Unavailable, domainchat.ErrTransient.Error())
	}
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return status.Error(codes.InvalidArgument, sentinel.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}

// FromStatus restores the chat sentinel carried by a gRPC status.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.OK:
		return nil
	case codes.Unauthenticated:
		return domainchat.ErrUnauthenticated
	case codes.PermissionDenied:
		return domainchat.ErrPermissionDenied
	case codes.NotFound:
		return domainchat.ErrNotFound
	case codes.FailedPrecondition:
		return domainchat.ErrSameParticipant
	case codes.InvalidArgument:
		for _, sentinel := range validationErrors {
			if st.Message() == sentinel.Error() {
				return sentinel
			}
		}
		return fmt.Errorf("%s: %w", st.Message(), domainchat.ErrInvalidIdentifier)
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return fmt.Errorf("chat rpc: %w", context.DeadlineExceeded)
	case codes.Unavailable, codes.ResourceExhausted, codes.Aborted:
		return fmt.Errorf("chat rpc %s: %w", st.Message(), domainchat.ErrTransient)
	default:
		return fmt.Errorf("chat rpc %s: %s", st.Code(), st.Message())
	}
}
