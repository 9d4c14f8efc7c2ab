package remote

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/screenline/console-api/pkg/utils"
)

// ErrNoCredential means the session has no usable bearer token: never
// acquired, cleared by logout, or expired and swept.
var ErrNoCredential = errors.New("no credential for session")

// CredentialProvider hands out the bearer token for the session bound to
// the context. Request builders depend on this interface instead of any
// process-wide token state.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

type sessionKey struct{}

func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func SessionFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}

type sessionCredential struct {
	encToken  string
	expiresAt time.Time
}

// CredentialStore keeps remote bearer tokens for active console
// sessions, encrypted at rest. Lifecycle: Acquire on login, Token reads
// during the session, Clear on logout, Sweep drops expired entries.
type CredentialStore struct {
	mu       sync.RWMutex
	secret   []byte
	ttl      time.Duration
	sessions map[string]sessionCredential
}

func NewCredentialStore(secret string, ttl time.Duration) *CredentialStore {
	return &CredentialStore{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]sessionCredential),
	}
}

// Acquire stores the token under a fresh session id and returns the id.
func (s *CredentialStore) Acquire(token string) (string, error) {
	sessionID, err := utils.GenerateRandomKey(24)
	if err != nil {
		return "", err
	}

	encToken, err := utils.Encrypt([]byte(token), s.secret)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	s.mu.Lock()
	s.sessions[sessionID] = sessionCredential{
		encToken:  encToken,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return sessionID, nil
}

func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	sessionID, ok := SessionFromContext(ctx)
	if !ok {
		return "", ErrNoCredential
	}

	s.mu.RLock()
	cred, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || time.Now().After(cred.expiresAt) {
		return "", ErrNoCredential
	}

	return utils.Decrypt(cred.encToken, s.secret)
}

func (s *CredentialStore) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *CredentialStore) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, cred := range s.sessions {
		if now.After(cred.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
