package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domainauth "marketchat/internal/domain/auth"
	domainuser "marketchat/internal/domain/user"
)

const keyPrefix = "marketchat:"

// SessionStore keeps bearer sessions as JSON values whose Redis TTL matches the session
// lifetime. A per-user set indexes tokens for DeleteByUser.
type SessionStore struct {
	rdb *goredis.Client
	Now func() time.Time
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func NewSessionStore(rdb *goredis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

type sessionValue struct {
	UserID    string    `json:"user_id"`
	Roles     []string  `json:"roles,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func sessionKey(token domainauth.Token) string { return keyPrefix + "session:" + string(token) }
func userKey(id domainuser.ID) string          { return keyPrefix + "user_sessions:" + string(id) }

func (s *SessionStore) Save(ctx context.Context, session *domainauth.Session) error {
	if session == nil {
		return domainauth.ErrTokenRequired
	}
	ttl := session.TTL(s.now())
	if ttl <= 0 {
		return domainauth.ErrTTLInvalid
	}
	raw, err := json.Marshal(encodeSession(session))
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Set(ctx, sessionKey(session.Token), raw, ttl)
		p.SAdd(ctx, userKey(session.UserID), string(session.Token))
		p.ExpireGT(ctx, userKey(session.UserID), ttl)
		p.ExpireNX(ctx, userKey(session.UserID), ttl)
		return nil
	})
	return err
}

func (s *SessionStore) Get(ctx context.Context, token domainauth.Token) (*domainauth.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domainauth.ErrSessionNotFound
		}
		return nil, err
	}
	var v sessionValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	session := decodeSession(token, v)
	if session.Expired(s.now()) {
		return nil, domainauth.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionStore) Delete(ctx context.Context, token domainauth.Token) error {
	session, err := s.Get(ctx, token)
	if errors.Is(err, domainauth.ErrSessionNotFound) {
		return s.rdb.Del(ctx, sessionKey(token)).Err()
	}
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Del(ctx, sessionKey(token))
		p.SRem(ctx, userKey(session.UserID), string(token))
		return nil
	})
	return err
}

func (s *SessionStore) DeleteByUser(ctx context.Context, userID domainuser.ID) error {
	tokens, err := s.rdb.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		keys = append(keys, sessionKey(domainauth.Token(t)))
	}
	keys = append(keys, userKey(userID))
	return s.rdb.Del(ctx, keys...).Err()
}

func (s *SessionStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func encodeSession(session *domainauth.Session) sessionValue {
	roles := make([]string, 0, len(session.Roles))
	for _, r := range session.Roles {
		roles = append(roles, string(r))
	}
	return sessionValue{
		UserID:    string(session.UserID),
		Roles:     roles,
		CreatedAt: session.CreatedAt.UTC(),
		ExpiresAt: session.ExpiresAt.UTC(),
	}
}

func decodeSession(token domainauth.Token, v sessionValue) *domainauth.Session {
	roles := make([]domainuser.Role, 0, len(v.Roles))
	for _, r := range v.Roles {
		roles = append(roles, domainuser.Role(r))
	}
	return &domainauth.Session{
		Token:     token,
		UserID:    domainuser.ID(v.UserID),
		Roles:     roles,
		CreatedAt: v.CreatedAt.UTC(),
		ExpiresAt: v.ExpiresAt.UTC(),
	}
}

var _ domainauth.SessionStore = (*SessionStore)(nil)
