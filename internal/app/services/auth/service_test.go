package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainauth "marketchat/internal/domain/auth"
	domainuser "marketchat/internal/domain/user"
	"marketchat/internal/infra/security"
	"marketchat/internal/infra/storage/memory"
)

func newService() *Service {
	return &Service{
		Users:      memory.NewUserRepository(),
		Sessions:   memory.NewSessionStore(),
		Passwords:  security.BcryptHasher{Cost: bcrypt.MinCost},
		Tokens:     security.RandomTokenGenerator{},
		SessionTTL: time.Hour,
	}
}

func TestRegisterLoginVerify(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterParams{Email: " Ann@Example.com ", Name: "Ann", Password: "password1", WantToSell: true})
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)
	assert.Equal(t, "ann@example.com", reg.User.Email)
	assert.True(t, reg.User.HasRole(domainuser.RoleSeller))

	identity, err := svc.Verify(ctx, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, identity.UserID)
	assert.Equal(t, "Ann", identity.Name)

	login, err := svc.Login(ctx, LoginParams{Email: "ann@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEqual(t, reg.Token, login.Token)

	_, err = svc.Login(ctx, LoginParams{Email: "ann@example.com", Password: "nope-nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, LoginParams{Email: "bob@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.Logout(ctx, login.Token))
	_, err = svc.Verify(ctx, login.Token)
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)
	_, err = svc.Verify(ctx, reg.Token)
	assert.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Email: "a@b.c", Name: "A", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	_, err = svc.Register(ctx, RegisterParams{Email: "", Name: "A", Password: "password1"})
	assert.ErrorIs(t, err, domainuser.ErrEmailRequired)
	_, err = svc.Register(ctx, RegisterParams{Email: "a@b.c", Name: " ", Password: "password1"})
	assert.ErrorIs(t, err, domainuser.ErrNameRequired)

	_, err = svc.Register(ctx, RegisterParams{Email: "a@b.c", Name: "A", Password: "password1"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterParams{Email: "A@B.C", Name: "A2", Password: "password1"})
	assert.ErrorIs(t, err, domainuser.ErrEmailAlreadyUsed)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	svc := newService()
	sessions := svc.Sessions.(*memory.SessionStore)
	now := time.Now()
	sessions.Now = func() time.Time { return now.Add(2 * time.Hour) }

	reg, err := svc.Register(context.Background(), RegisterParams{Email: "a@b.c", Name: "A", Password: "password1"})
	require.NoError(t, err)
	_, err = svc.Verify(context.Background(), reg.Token)
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)
}

func TestServiceRequiresDependencies(t *testing.T) {
	_, err := (&Service{}).Verify(context.Background(), "x")
	assert.Error(t, err)
}
