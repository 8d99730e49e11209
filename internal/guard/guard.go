// Package guard contains the route guards: pure functions from session
// state to a navigation decision. Decisions are values, so guards are
// testable without any rendering environment; the router applies them.
package guard

import (
	domainauth "github.com/nutritrack/nutritrack/internal/domain/auth"
	"github.com/nutritrack/nutritrack/internal/ports"
)

// Action is the kind of navigation decision a guard produces.
type Action int

const (
	// RenderProtected allows the protected view to render.
	RenderProtected Action = iota
	// RenderLoading shows the bootstrap loading state instead of deciding.
	RenderLoading
	// RedirectToLogin sends the user to the login entry point.
	RedirectToLogin
	// RedirectToDefault sends the user to the default authenticated landing page.
	RedirectToDefault
)

// String returns a readable name for logging and test failure output.
func (a Action) String() string {
	switch a {
	case RenderProtected:
		return "render_protected"
	case RenderLoading:
		return "render_loading"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToDefault:
		return "redirect_to_default"
	default:
		return "unknown"
	}
}

// Decision is a guard's verdict for a navigation attempt.
type Decision struct {
	Action Action

	// From carries the attempted route on login redirects so the login
	// flow can optionally return the user there afterward.
	From string
}

// Authenticated gates routes that require a logged-in session.
//
// While the bootstrap check is still running the guard defers with
// RenderLoading rather than redirecting a user whose persisted session
// has simply not been read yet.
func Authenticated(s domainauth.Session, from string) Decision {
	if s.IsLoading {
		return Decision{Action: RenderLoading}
	}
	if !s.IsAuthenticated {
		return Decision{Action: RedirectToLogin, From: from}
	}
	return Decision{Action: RenderProtected}
}

// Admin gates the admin back-office. Evaluation order is authentication
// first, authorization second: an unauthenticated user goes to login and
// never sees the denial notice. Only an authenticated non-admin is told
// access was denied, exactly once, before the default-page redirect.
//
// Unlike Authenticated, this guard does not consult IsLoading.
func Admin(s domainauth.Session, from string, notifier ports.Notifier) Decision {
	if !s.IsAuthenticated {
		return Decision{Action: RedirectToLogin, From: from}
	}
	if s.User == nil || !s.User.IsAdmin() {
		if notifier != nil {
			notifier.Notify("Access denied. Administrator privileges are required.")
		}
		return Decision{Action: RedirectToDefault}
	}
	return Decision{Action: RenderProtected}
}
