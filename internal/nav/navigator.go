package nav

import (
	"sync"

	"github.com/nutritrack/nutritrack/internal/ports"
)

var _ ports.Navigator = (*Tracker)(nil)

// Tracker is the client's navigator: it tracks the current route in
// process memory. Replace is the history-replacing navigation used for
// redirects, so a redirected-away view is not reachable by going back.
type Tracker struct {
	mu      sync.Mutex
	current string
}

// NewTracker creates a navigator positioned at the given start route.
func NewTracker(start string) *Tracker {
	if start == "" {
		start = "/"
	}
	return &Tracker{current: start}
}

// Location returns the current route.
func (t *Tracker) Location() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Replace navigates to the given route, replacing the current entry.
func (t *Tracker) Replace(route string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = route
}

// Visit navigates to the given route as a normal forward navigation.
func (t *Tracker) Visit(route string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = route
}
