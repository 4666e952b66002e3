package security

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainauth "marketchat/internal/domain/auth"
	domainuser "marketchat/internal/domain/user"
)

func TestJWTVerifierAcceptsIssuedToken(t *testing.T) {
	secret := []byte("test-secret")
	issuer := JWTIssuer{Secret: secret, Issuer: "marketplace", TTL: time.Hour}
	token, err := issuer.Issue(domainauth.Identity{
		UserID: "u1",
		Name:   "Ann",
		Roles:  []domainuser.Role{domainuser.RoleSeller},
	}, time.Now())
	require.NoError(t, err)

	identity, err := JWTVerifier{Secret: secret, Issuer: "marketplace"}.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, domainuser.ID("u1"), identity.UserID)
	assert.Equal(t, "Ann", identity.Name)
	assert.Equal(t, []domainuser.Role{domainuser.RoleSeller}, identity.Roles)
}

func TestJWTVerifierRejects(t *testing.T) {
	secret := []byte("test-secret")
	valid := JWTIssuer{Secret: secret, Issuer: "marketplace"}
	verifier := JWTVerifier{Secret: secret, Issuer: "marketplace"}

	expired, err := valid.Issue(domainauth.Identity{UserID: "u1"}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, err := JWTIssuer{Secret: []byte("other"), Issuer: "marketplace"}.Issue(domainauth.Identity{UserID: "u1"}, time.Now())
	require.NoError(t, err)
	wrongIssuer, err := JWTIssuer{Secret: secret, Issuer: "elsewhere"}.Issue(domainauth.Identity{UserID: "u1"}, time.Now())
	require.NoError(t, err)
	noSubject, err := valid.Issue(domainauth.Identity{}, time.Now())
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":      expired,
		"foreign":      foreign,
		"wrong issuer": wrongIssuer,
		"no subject":   noSubject,
		"garbage":      "not.a.jwt",
	} {
		_, err := verifier.Verify(context.Background(), token)
		assert.ErrorIs(t, err, domainauth.ErrInvalidToken, name)
	}

	_, err = verifier.Verify(context.Background(), " ")
	assert.ErrorIs(t, err, domainauth.ErrTokenRequired)
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "correct horse"))
	assert.Error(t, h.Compare(hash, "wrong horse"))

	_, err = h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestRandomTokenGenerator(t *testing.T) {
	g := RandomTokenGenerator{Prefix: "mc_"}
	a, err := g.NewToken()
	require.NoError(t, err)
	b, err := g.NewToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "mc_"))
	assert.Len(t, a, len("mc_")+43)
}
