// Package tokenfile persists the bearer token in a single file under the
// user configuration directory. It is the durable half of the session:
// only the raw token string is ever written, never user identity.
package tokenfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nutritrack/nutritrack/internal/ports"
)

var _ ports.TokenBacking = (*Slot)(nil)

const (
	appDirName    = "nutritrack"
	tokenFileName = "token"

	dirPerm  = 0o700
	filePerm = 0o600
)

// Slot is a file-backed token slot.
type Slot struct {
	path string
}

// New creates a Slot at the given path. An empty path resolves to the
// default location under the user config directory.
func New(path string) (*Slot, error) {
	if path == "" {
		resolved, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return &Slot{path: path}, nil
}

// DefaultPath returns the default token file location,
// e.g. ~/.config/nutritrack/token on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, tokenFileName), nil
}

// Path returns the slot's file path.
func (s *Slot) Path() string { return s.path }

// Load reads the stored token. A missing file means no session and
// returns an empty token without error.
func (s *Slot) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Store writes the token, creating the parent directory if needed.
// The file is written with owner-only permissions since it holds a credential.
func (s *Slot) Store(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), filePerm); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the token file. Clearing an absent file is not an error.
func (s *Slot) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
