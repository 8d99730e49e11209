package ports

// Package ports defines interfaces (hexagonal ports) for session-related behavior.
// Implementations live in internal/adapters and internal/nav; orchestration in internal/service.

// TokenBacking is the single durable slot holding the bearer token across
// process runs. Absence of a stored token means "no session".
type TokenBacking interface {
	// Load returns the stored token, or empty string when no token is stored.
	Load() (string, error)

	// Store replaces the stored token.
	Store(token string) error

	// Clear removes the stored token. Clearing an empty slot is not an error.
	Clear() error
}

// Navigator abstracts the client's current location and history-replacing
// navigation, so session-expiry handling and guards stay testable without
// a rendering environment.
type Navigator interface {
	// Location returns the current route.
	Location() string

	// Replace navigates to the given route, replacing the current history
	// entry so back-navigation cannot return to the previous view.
	Replace(route string)
}

// Notifier surfaces user-facing notices raised outside normal view
// rendering, such as the admin-guard denial notice.
type Notifier interface {
	Notify(message string)
}
