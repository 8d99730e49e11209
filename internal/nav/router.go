package nav

import (
	"log/slog"

	"github.com/nutritrack/nutritrack/internal/guard"
	"github.com/nutritrack/nutritrack/internal/ports"
	"github.com/nutritrack/nutritrack/internal/session"
)

// Router resolves navigation attempts. Each attempt consults the route
// table and the matching guard, then applies the decision to the
// navigator: redirects replace history, successful renders move the
// current location forward.
type Router struct {
	store    *session.Store
	nav      ports.Navigator
	notifier ports.Notifier
	logger   *slog.Logger
}

// RouterOptions groups dependencies for Router.
type RouterOptions struct {
	Store    *session.Store
	Nav      ports.Navigator
	Notifier ports.Notifier
	Logger   *slog.Logger
}

// NewRouter constructs a Router.
func NewRouter(opts RouterOptions) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		store:    opts.Store,
		nav:      opts.Nav,
		notifier: opts.Notifier,
		logger:   logger,
	}
}

// Resolve evaluates the guard for a route without touching the navigator.
// Unknown routes fall back to the default landing page.
func (r *Router) Resolve(route string) guard.Decision {
	access, known := AccessFor(route)
	if !known {
		return guard.Decision{Action: guard.RedirectToDefault}
	}

	switch access {
	case AccessPublic:
		return guard.Decision{Action: guard.RenderProtected}
	case AccessAdmin:
		return guard.Admin(r.store.Snapshot(), route, r.notifier)
	default:
		return guard.Authenticated(r.store.Snapshot(), route)
	}
}

// Navigate resolves a route and applies the decision to the navigator.
// The decision is returned so the caller can render accordingly.
func (r *Router) Navigate(route string) guard.Decision {
	d := r.Resolve(route)

	switch d.Action {
	case guard.RenderProtected:
		r.nav.Replace(route)
	case guard.RedirectToLogin:
		r.logger.Debug("navigation redirected to login", "from", route)
		r.nav.Replace(RouteLogin)
	case guard.RedirectToDefault:
		r.logger.Debug("navigation redirected to default", "from", route)
		r.nav.Replace(RouteDefault)
	case guard.RenderLoading:
		// Location unchanged while the bootstrap check is pending.
	}
	return d
}
