package chatv1

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	chatsvc "marketchat/internal/app/services/chat"
	domainchat "marketchat/internal/domain/chat"
)

func TestStatusRoundTrip(t *testing.T) {
	cases := []struct {
		err      error
		code     codes.Code
		sentinel error
	}{
		{domainchat.ErrUnauthenticated, codes.Unauthenticated, domainchat.ErrUnauthenticated},
		{fmt.Errorf("load room: %w", domainchat.ErrPermissionDenied), codes.PermissionDenied, domainchat.ErrPermissionDenied},
		{domainchat.ErrNotFound, codes.NotFound, domainchat.ErrNotFound},
		{domainchat.ErrSameParticipant, codes.FailedPrecondition, domainchat.ErrSameParticipant},
		{domainchat.ErrTextTooLong, codes.InvalidArgument, domainchat.ErrTextTooLong},
		{fmt.Errorf("page: %w", domainchat.ErrInvalidCursor), codes.InvalidArgument, domainchat.ErrInvalidCursor},
	}
	for _, tc := range cases {
		st := ToStatus(tc.err)
		assert.Equal(t, tc.code, status.Code(st), tc.err.Error())
		assert.ErrorIs(t, FromStatus(st), tc.sentinel)
	}
}

func TestTransientAndUnexpected(t *testing.T) {
	st := ToStatus(fmt.Errorf("mongo: %w", domainchat.ErrTransient))
	assert.Equal(t, codes.Unavailable, status.Code(st))
	assert.True(t, domainchat.IsTransient(FromStatus(st)))

	assert.Equal(t, codes.Unavailable, status.Code(ToStatus(chatsvc.ErrServiceNotConfigured)))

	st = ToStatus(errors.New("driver exploded: secret dsn"))
	assert.Equal(t, codes.Internal, status.Code(st))
	assert.NotContains(t, status.Convert(st).Message(), "secret")

	assert.ErrorIs(t, FromStatus(ToStatus(context.Canceled)), context.Canceled)
	assert.NoError(t, FromStatus(nil))
}
