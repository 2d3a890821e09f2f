package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neev4n/eish/internal/config"
	"github.com/Neev4n/eish/internal/logging"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("EISH_CONFIG", "")
	return home
}

func TestRootRejectsArguments(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"ls"})

	assert.Error(t, cmd.Execute())
}

func TestRunRequiresTerminal(t *testing.T) {
	home := isolate(t)
	logFile := filepath.Join(home, "logs", "eish.log")
	t.Setenv("EISH_LOG_FILE", logFile)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	err = run(context.Background(), r, w)
	assert.ErrorIs(t, err, ErrNotTerminal)
	assert.FileExists(t, logFile)
}

func TestRunBadConfig(t *testing.T) {
	isolate(t)
	t.Setenv("EISH_HISTORY_LIMIT", "-1")

	err := run(context.Background(), os.Stdin, os.Stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.limit")
}

func TestRunBadRedactPattern(t *testing.T) {
	isolate(t)
	t.Setenv("EISH_LOG_REDACT", "(")

	err := run(context.Background(), os.Stdin, os.Stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.redact")
}

func TestSessionError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.NoError(t, sessionError(ctx, nil))

	other := errors.New("writing to terminal: broken pipe")
	assert.Equal(t, other, sessionError(ctx, other))

	cancel()
	assert.ErrorIs(t, sessionError(ctx, fmt.Errorf("read: %w", context.Canceled)), ErrTerminated)
	assert.Equal(t, other, sessionError(ctx, other))
}

func TestLoadHistory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")
	require.NoError(t, os.WriteFile(path, []byte("ls\nmake\n"), 0o600))

	store := loadHistory(config.HistoryConfig{File: path, Limit: 10}, logging.NewNop())
	assert.Equal(t, []string{"ls", "make"}, store.Entries())

	store = loadHistory(config.HistoryConfig{Limit: 10}, logging.NewNop())
	assert.Equal(t, 0, store.Len())

	// a directory cannot be read as a file
	store = loadHistory(config.HistoryConfig{File: dir, Limit: 10}, logging.NewNop())
	assert.Equal(t, 0, store.Len())
}

func TestOpenLog(t *testing.T) {
	w, closeLog, err := openLog("")
	require.NoError(t, err)
	closeLog()
	_, err = w.Write([]byte("discarded"))
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "eish.log")
	w, closeLog, err = openLog(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "line"))
}
