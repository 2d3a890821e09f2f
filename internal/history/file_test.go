package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope"), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "history")

	s := New(0)
	hs := s.Begin()
	hs.Finalize("ls -la")
	hs = s.Begin()
	hs.Finalize("cd /tmp")
	require.NoError(t, s.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"ls -la", "cd /tmp"}, loaded.Entries())
}

func TestLoadSkipsBlankLinesAndTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("a\n\nb\n  \nc\n"), 0o600))

	s, err := Load(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, s.Entries())
}
