package security

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "marketchat/internal/domain/auth"
	domainuser "marketchat/internal/domain/user"
)

// Claims carries the marketplace identity inside an HS256 token. The subject is the user id.
type Claims struct {
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates tokens minted by the marketplace identity provider.
type JWTVerifier struct {
	Secret []byte
	Issuer string
	Leeway time.Duration
}

func (v JWTVerifier) Verify(ctx context.Context, token string) (domainauth.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainauth.Identity{}, domainauth.ErrTokenRequired
	}
	if len(v.Secret) == 0 {
		return domainauth.Identity{}, errors.New("security: jwt secret not configured")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.Leeway),
	}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.Secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return domainauth.Identity{}, fmt.Errorf("%w: %v", domainauth.ErrInvalidToken, err)
	}
	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return domainauth.Identity{}, fmt.Errorf("%w: missing subject", domainauth.ErrInvalidToken)
	}
	return domainauth.Identity{
		UserID: domainuser.ID(subject),
		Name:   claims.Name,
		Roles:  domainuser.ParseRoles(claims.Roles),
	}, nil
}

// JWTIssuer mints tokens JWTVerifier accepts. Used by tooling and tests.
type JWTIssuer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (i JWTIssuer) Issue(identity domainauth.Identity, now time.Time) (string, error) {
	ttl := i.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	roles := make([]string, 0, len(identity.Roles))
	for _, r := range identity.Roles {
		roles = append(roles, string(r))
	}
	claims := &Claims{
		Name:  identity.Name,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(identity.UserID),
			Issuer:    i.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
}

var _ domainauth.Verifier = JWTVerifier{}
