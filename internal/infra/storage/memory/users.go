package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	domainauth "marketchat/internal/domain/auth"
	domainuser "marketchat/internal/domain/user"
)

// UserRepository keeps accounts in memory, indexed by id and normalized email.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[domainuser.ID]*domainuser.User
	byEmail map[string]domainuser.ID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[domainuser.ID]*domainuser.User),
		byEmail: make(map[string]domainuser.ID),
	}
}

func (r *UserRepository) ByID(ctx context.Context, id domainuser.ID) (*domainuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byID[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domainuser.ErrNotFound
}

func (r *UserRepository) ByEmail(ctx context.Context, email string) (*domainuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, domainuser.ErrNotFound
	}
	return cloneUser(r.byID[id]), nil
}

// Save inserts or replaces an account. A changed email releases the previous one.
func (r *UserRepository) Save(ctx context.Context, u *domainuser.User) error {
	if u == nil || strings.TrimSpace(string(u.ID)) == "" {
		return domainuser.ErrIDRequired
	}
	key := emailKey(u.Email)
	if key == "" {
		return domainuser.ErrEmailRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.byEmail[key]; ok && owner != u.ID {
		return domainuser.ErrEmailAlreadyUsed
	}
	if prev, ok := r.byID[u.ID]; ok {
		if prevKey := emailKey(prev.Email); prevKey != key {
			delete(r.byEmail, prevKey)
		}
	}
	r.byEmail[key] = u.ID
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneUser(u *domainuser.User) *domainuser.User {
	if u == nil {
		return nil
	}
	out := *u
	out.Roles = append([]domainuser.Role(nil), u.Roles...)
	return &out
}

// SessionStore keeps bearer sessions in memory. Expired sessions are dropped on read.
type SessionStore struct {
	mu     sync.Mutex
	tokens map[domainauth.Token]*domainauth.Session
	byUser map[domainuser.ID]map[domainauth.Token]struct{}

	Now func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		tokens: make(map[domainauth.Token]*domainauth.Session),
		byUser: make(map[domainuser.ID]map[domainauth.Token]struct{}),
	}
}

func (s *SessionStore) Save(ctx context.Context, session *domainauth.Session) error {
	if session == nil {
		return domainauth.ErrTokenRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[session.Token] = cloneSession(session)
	if _, ok := s.byUser[session.UserID]; !ok {
		s.byUser[session.UserID] = make(map[domainauth.Token]struct{})
	}
	s.byUser[session.UserID][session.Token] = struct{}{}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token domainauth.Token) (*domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.tokens[token]
	if !ok {
		return nil, domainauth.ErrSessionNotFound
	}
	if session.Expired(s.now()) {
		s.dropLocked(session)
		return nil, domainauth.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func (s *SessionStore) Delete(ctx context.Context, token domainauth.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.tokens[token]; ok {
		s.dropLocked(session)
	}
	return nil
}

func (s *SessionStore) DeleteByUser(ctx context.Context, userID domainuser.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token := range s.byUser[userID] {
		delete(s.tokens, token)
	}
	delete(s.byUser, userID)
	return nil
}

func (s *SessionStore) dropLocked(session *domainauth.Session) {
	delete(s.tokens, session.Token)
	if index, ok := s.byUser[session.UserID]; ok {
		delete(index, session.Token)
		if len(index) == 0 {
			delete(s.byUser, session.UserID)
		}
	}
}

func (s *SessionStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func cloneSession(s *domainauth.Session) *domainauth.Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Roles = append([]domainuser.Role(nil), s.Roles...)
	return &out
}

var _ domainuser.Repository = (*UserRepository)(nil)
var _ domainauth.SessionStore = (*SessionStore)(nil)
