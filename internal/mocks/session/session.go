package session

// Package session contains simple hand-written test doubles for session ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"sync"

	"github.com/nutritrack/nutritrack/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenBacking = (*MemoryTokenBacking)(nil)
	_ ports.Navigator    = (*RecordingNavigator)(nil)
	_ ports.Notifier     = (*RecordingNotifier)(nil)
)

// MemoryTokenBacking is an in-memory token slot with optional injected failures.
type MemoryTokenBacking struct {
	mu    sync.Mutex
	token string

	LoadErr  error
	StoreErr error
	ClearErr error

	// Call counters for asserting persistence behavior.
	LoadCalls  int
	StoreCalls int
	ClearCalls int
}

// NewMemoryTokenBacking creates an empty in-memory token slot.
func NewMemoryTokenBacking() *MemoryTokenBacking {
	return &MemoryTokenBacking{}
}

// Seed pre-populates the slot, simulating a token persisted by a prior run.
func (m *MemoryTokenBacking) Seed(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *MemoryTokenBacking) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls++
	if m.LoadErr != nil {
		return "", m.LoadErr
	}
	return m.token, nil
}

func (m *MemoryTokenBacking) Store(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreCalls++
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.token = token
	return nil
}

func (m *MemoryTokenBacking) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.token = ""
	return nil
}

// Current returns the stored token without counting as a Load.
func (m *MemoryTokenBacking) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// RecordingNavigator tracks the current route and records every Replace call.
type RecordingNavigator struct {
	mu       sync.Mutex
	current  string
	Replaced []string
}

// NewRecordingNavigator creates a navigator positioned at the given route.
func NewRecordingNavigator(current string) *RecordingNavigator {
	return &RecordingNavigator{current: current}
}

func (n *RecordingNavigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *RecordingNavigator) Replace(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = route
	n.Replaced = append(n.Replaced, route)
}

// ReplaceCount returns how many Replace calls were recorded.
func (n *RecordingNavigator) ReplaceCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Replaced)
}

// RecordingNotifier records user-facing notices.
type RecordingNotifier struct {
	mu      sync.Mutex
	Notices []string
}

// NewRecordingNotifier creates an empty notifier.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Notices = append(n.Notices, message)
}

// Count returns how many notices were recorded.
func (n *RecordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Notices)
}
