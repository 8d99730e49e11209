// Package session holds the client's single source of truth for
// authentication state. The store is mutated only through its defined
// operations, each of which completes under the lock before returning,
// so readers never observe a partial update.
package session

import (
	"log/slog"
	"sync"

	domainauth "github.com/nutritrack/nutritrack/internal/domain/auth"
	"github.com/nutritrack/nutritrack/internal/ports"
)

// Store is the process-wide authentication state container.
//
// It mirrors the token half of its state into a durable backing slot:
// written on SetCredentials, removed on Logout. Backing failures are
// logged and swallowed since session functionality must not be blocked
// by storage errors.
type Store struct {
	mu      sync.Mutex
	session domainauth.Session

	backing ports.TokenBacking
	logger  *slog.Logger
}

// NewStore creates a Store in its bootstrap state: empty credentials,
// IsLoading set until the startup check completes.
func NewStore(backing ports.TokenBacking, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		session: domainauth.Session{IsLoading: true},
		backing: backing,
		logger:  logger,
	}
}

// SetCredentials overwrites the token and user and persists the token.
// No validation of token format or expiry happens here; the backend is
// the authority on token validity.
func (s *Store) SetCredentials(token string, user *domainauth.User) {
	s.mu.Lock()
	s.session.Token = token
	s.session.User = user
	// Authenticated only when both halves are present, keeping the
	// invariant intact even for degenerate input.
	s.session.IsAuthenticated = token != "" && user != nil
	s.mu.Unlock()

	if err := s.backing.Store(token); err != nil {
		s.logger.Warn("persist session token", "error", err)
	}
}

// Logout atomically clears the token and user and removes the persisted
// token. Calling Logout on an already logged-out store is safe.
func (s *Store) Logout() {
	s.mu.Lock()
	s.session.Token = ""
	s.session.User = nil
	s.session.IsAuthenticated = false
	s.mu.Unlock()

	if err := s.backing.Clear(); err != nil {
		s.logger.Warn("clear persisted session token", "error", err)
	}
}

// SetLoading sets the bootstrap flag. It has no other side effects.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.session.IsLoading = loading
	s.mu.Unlock()
}

// Snapshot returns a copy of the current session. The returned user is a
// copy, so callers cannot mutate store state through it.
func (s *Store) Snapshot() domainauth.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.session
	if s.session.User != nil {
		user := *s.session.User
		user.Roles = append(domainauth.RoleList(nil), s.session.User.Roles...)
		snap.User = &user
	}
	return snap
}

// Token returns the current bearer token, or empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}
