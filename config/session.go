package config

// SessionConfig contains persisted session configuration.
//
// The client persists exactly one value across runs: the bearer token.
// Everything else about the session is rebuilt in memory at startup.
type SessionConfig struct {
	// TokenFile overrides the path of the persisted token slot.
	// Empty means the default location under the user config directory.
	TokenFile string `env:"TOKEN_FILE"`
}
