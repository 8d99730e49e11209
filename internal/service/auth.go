// Package service contains orchestration for the client: composing API
// calls, session mutations, and persisted state into the flows the views
// trigger.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nutritrack/nutritrack/internal/api"
	domainauth "github.com/nutritrack/nutritrack/internal/domain/auth"
	"github.com/nutritrack/nutritrack/internal/ports"
	"github.com/nutritrack/nutritrack/internal/session"
)

// AuthAPI is the slice of the auth endpoints this service needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*api.LoginResult, error)
	Register(ctx context.Context, in api.RegisterInput) (string, error)
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API     AuthAPI
	Store   *session.Store
	Backing ports.TokenBacking
	Logger  *slog.Logger
}

// AuthService orchestrates login, registration, logout, and the one-time
// session bootstrap.
type AuthService struct {
	api     AuthAPI
	store   *session.Store
	backing ports.TokenBacking
	logger  *slog.Logger

	bootOnce sync.Once
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		api:     opts.API,
		store:   opts.Store,
		backing: opts.Backing,
		logger:  logger,
	}
}

// Login exchanges credentials for a session and stores it.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domainauth.User, error) {
	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	s.store.SetCredentials(result.Token, result.User)
	return result.User, nil
}

// Register creates a new account. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, in api.RegisterInput) (string, error) {
	return s.api.Register(ctx, in)
}

// Logout clears the session and the persisted token.
func (s *AuthService) Logout() {
	s.store.Logout()
}

// Bootstrap performs the one-time startup check: read the persisted token
// and, when present, optimistically seed the session from it. The loading
// flag is cleared exactly once regardless of outcome; repeat calls are no-ops.
//
// The stored token is trusted without a backend round-trip, matching the
// product's startup behavior: a stale token surfaces naturally as a 401 on
// the first authenticated request, which the expiry interceptor handles.
func (s *AuthService) Bootstrap(ctx context.Context) {
	s.bootOnce.Do(func() {
		defer s.store.SetLoading(false)

		token, err := s.backing.Load()
		if err != nil {
			s.logger.Warn("read persisted token", "error", err)
			return
		}
		if token == "" {
			return
		}
		s.store.SetCredentials(token, identityFromToken(token))
	})
}

// identityFromToken rebuilds a user identity from the token's claims.
// The signature is NOT verified here; only the backend can do that, and
// bootstrap deliberately avoids a network round-trip. Opaque tokens fall
// back to a placeholder identity so the session is still usable.
func identityFromToken(raw string) *domainauth.User {
	placeholder := &domainauth.User{
		Username: "user",
		Roles:    domainauth.RoleList{domainauth.RoleUser},
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return placeholder
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return placeholder
	}

	user := &domainauth.User{}
	if sub, _ := claims["sub"].(string); sub != "" {
		user.ID = sub
		user.Username = sub
	}
	if id, _ := claims["id"].(string); id != "" {
		user.ID = id
	}
	if username, _ := claims["username"].(string); username != "" {
		user.Username = username
	}
	if user.Username == "" {
		user.Username = placeholder.Username
	}
	user.Roles = domainauth.NormalizeRoles(claims["roles"])
	if len(user.Roles) == 0 {
		user.Roles = domainauth.RoleList{domainauth.RoleUser}
	}
	return user
}
