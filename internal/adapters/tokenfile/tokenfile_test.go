package tokenfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlot(t *testing.T) *Slot {
	t.Helper()
	slot, err := New(filepath.Join(t.TempDir(), "nested", "token"))
	require.NoError(t, err)
	return slot
}

func TestLoadMissingFileMeansNoSession(t *testing.T) {
	slot := newTestSlot(t)

	token, err := slot.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStoreThenLoadRoundTrip(t *testing.T) {
	slot := newTestSlot(t)

	require.NoError(t, slot.Store("tok-abc"))

	token, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestStoreCreatesParentDirectory(t *testing.T) {
	slot := newTestSlot(t)

	require.NoError(t, slot.Store("tok-abc"))

	_, err := os.Stat(filepath.Dir(slot.Path()))
	require.NoError(t, err)
}

func TestLoadTrimsWhitespace(t *testing.T) {
	slot := newTestSlot(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(slot.Path()), 0o700))
	require.NoError(t, os.WriteFile(slot.Path(), []byte("tok-abc\n"), 0o600))

	token, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestClearIsIdempotent(t *testing.T) {
	slot := newTestSlot(t)
	require.NoError(t, slot.Store("tok-abc"))

	require.NoError(t, slot.Clear())
	require.NoError(t, slot.Clear())

	token, err := slot.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	slot := newTestSlot(t)
	require.NoError(t, slot.Store("tok-abc"))

	info, err := os.Stat(slot.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestNewDefaultsUnderUserConfigDir(t *testing.T) {
	slot, err := New("")
	require.NoError(t, err)
	assert.Contains(t, slot.Path(), "nutritrack")
}
