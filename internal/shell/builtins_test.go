package shell

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cdHarness starts a shell in a fresh directory. cd changes the process
// working directory, so these tests cannot run in parallel.
func cdHarness(t *testing.T) (*harness, string) {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	h := newHarness(t, nil, WithPath(dir))
	return h, dir
}

func dispatch(t *testing.T, h *harness, line string) string {
	t.Helper()
	h.out.Reset()
	require.NoError(t, h.shell.Dispatch(context.Background(), line))
	return h.out.String()
}

func TestCdNoArgsPrintsPath(t *testing.T) {
	h, dir := cdHarness(t)

	assert.Equal(t, dir+"\r\n", dispatch(t, h, "cd"))
	assert.Equal(t, dir, h.shell.Path())
}

func TestCdHome(t *testing.T) {
	h, _ := cdHarness(t)
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "src"), 0o755))
	t.Setenv("HOME", home)

	assert.Empty(t, dispatch(t, h, "cd ~"))
	assert.Equal(t, home, h.shell.Path())

	assert.Empty(t, dispatch(t, h, "cd ~/src"))
	assert.Equal(t, filepath.Join(home, "src"), h.shell.Path())

	wd, err := os.Getwd()
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(home, "src"))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCdHomeNotSet(t *testing.T) {
	h, dir := cdHarness(t)
	t.Setenv("HOME", "")

	assert.Equal(t, "cd: HOME not set\r\n", dispatch(t, h, "cd ~"))
	assert.Equal(t, dir, h.shell.Path())
}

func TestCdRelative(t *testing.T) {
	h, dir := cdHarness(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755))

	assert.Empty(t, dispatch(t, h, "cd a/b"))
	assert.Equal(t, filepath.Join(dir, "a", "b"), h.shell.Path())

	assert.Empty(t, dispatch(t, h, "cd .."))
	assert.Equal(t, filepath.Join(dir, "a"), h.shell.Path())
}

func TestCdAbsolute(t *testing.T) {
	h, _ := cdHarness(t)
	other := t.TempDir()

	assert.Empty(t, dispatch(t, h, "cd "+other+"/"))
	assert.Equal(t, other, h.shell.Path())
}

func TestCdErrors(t *testing.T) {
	h, dir := cdHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), nil, 0o644))

	tests := []struct {
		line string
		want string
	}{
		{"cd missing", "cd: missing: No such file or directory\r\n"},
		{"cd file", "cd: file: Not a directory\r\n"},
		{"cd a b", "cd: too many arguments\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, dispatch(t, h, tt.line))
			assert.Equal(t, dir, h.shell.Path())
		})
	}
}

func TestCdPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	h, dir := cdHarness(t)
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	assert.Equal(t, "cd: locked: Permission denied\r\n", dispatch(t, h, "cd locked"))
}

func TestExitPrintsFarewell(t *testing.T) {
	h := newHarness(t, nil, WithFarewell("bye"))

	err := h.shell.Dispatch(context.Background(), "exit")
	assert.ErrorIs(t, err, ErrExit)
	assert.Equal(t, "bye\r\n", h.out.String())
}
