package api

import (
	"log/slog"

	"github.com/nutritrack/nutritrack/internal/ports"
	"github.com/nutritrack/nutritrack/internal/session"
)

// ExpiryInterceptor reacts to authorization failures observed by a Gateway:
// it invalidates the session and forces a history-replacing navigation to
// the login entry point, independent of which caller issued the request.
//
// The interceptor is stateless. Concurrent 401/403 bursts each trigger a
// logout (idempotent) and re-evaluate the redirect guard independently; a
// redundant redirect to the same location is harmless.
type ExpiryInterceptor struct {
	store      *session.Store
	nav        ports.Navigator
	loginRoute string
	logger     *slog.Logger
}

// NewExpiryInterceptor constructs an interceptor targeting the given login route.
func NewExpiryInterceptor(store *session.Store, nav ports.Navigator, loginRoute string, logger *slog.Logger) *ExpiryInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpiryInterceptor{
		store:      store,
		nav:        nav,
		loginRoute: loginRoute,
		logger:     logger,
	}
}

// OnAuthFailure handles one 401/403 response. The logout always happens;
// the redirect is suppressed when already at the login entry point so the
// login page's own failing requests cannot cause a redirect loop.
func (i *ExpiryInterceptor) OnAuthFailure(status int) {
	i.store.Logout()

	if i.nav.Location() == i.loginRoute {
		return
	}
	i.logger.Info("session expired, redirecting to login", "status", status)
	i.nav.Replace(i.loginRoute)
}
