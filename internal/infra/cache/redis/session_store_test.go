package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domainauth "marketchat/internal/domain/auth"
	domainuser "marketchat/internal/domain/user"
)

func TestSessionEncodingKeepsIdentity(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	session, err := domainauth.NewSession(domainauth.CreateSessionParams{
		Token:  "tok",
		UserID: "u1",
		Roles:  []domainuser.Role{"seller"},
		TTL:    time.Hour,
		Now:    now,
	})
	assert.NoError(t, err)

	got := decodeSession("tok", encodeSession(session))
	assert.Equal(t, session, got)
	assert.Equal(t, "marketchat:session:tok", sessionKey("tok"))
	assert.Equal(t, "marketchat:user_sessions:u1", userKey("u1"))
}
