// Package mocks provides mock implementations for testing the nutritrack client.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// session ports. Hand-written doubles with richer recording behavior live in the
// mocks/session subpackage.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mocks for the session ports from internal/ports.
// This creates MockTokenBacking, MockNavigator, and MockNotifier.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_mock.go github.com/nutritrack/nutritrack/internal/ports TokenBacking,Navigator,Notifier
