package terminal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neev4n/eish/internal/terminal"
	"github.com/Neev4n/eish/internal/testutil"
)

func TestSuspendRestoresRawMode(t *testing.T) {
	m := testutil.NewFakeMode()

	var rawDuring bool
	err := terminal.Suspend(m, func() error {
		rawDuring = m.Raw()
		return nil
	})

	require.NoError(t, err)
	assert.False(t, rawDuring)
	assert.True(t, m.Raw())
	assert.Equal(t, []string{"disable", "enable"}, m.Calls)
}

func TestSuspendRestoresAfterFailure(t *testing.T) {
	m := testutil.NewFakeMode()
	spawnErr := errors.New("fork/exec: resource temporarily unavailable")

	err := terminal.Suspend(m, func() error { return spawnErr })

	assert.ErrorIs(t, err, spawnErr)
	assert.NotErrorIs(t, err, terminal.ErrRawMode)
	assert.True(t, m.Raw())
}

func TestSuspendLeavesCookedOnPanic(t *testing.T) {
	m := testutil.NewFakeMode()

	assert.PanicsWithValue(t, "child wait blew up", func() {
		_ = terminal.Suspend(m, func() error {
			panic("child wait blew up")
		})
	})
	assert.False(t, m.Raw())
}

func TestSuspendModeErrors(t *testing.T) {
	t.Run("disable fails", func(t *testing.T) {
		m := testutil.NewFakeMode()
		m.DisableErr = errors.New("tcsetattr")
		called := false

		err := terminal.Suspend(m, func() error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, terminal.ErrRawMode)
		assert.False(t, called)
	})

	t.Run("enable fails", func(t *testing.T) {
		m := testutil.NewFakeMode()
		m.EnableErr = errors.New("tcsetattr")
		spawnErr := errors.New("exit status 2")

		err := terminal.Suspend(m, func() error { return spawnErr })

		assert.ErrorIs(t, err, terminal.ErrRawMode)
		assert.ErrorIs(t, err, spawnErr)
	})
}

func TestRestoreOnPanic(t *testing.T) {
	m := testutil.NewFakeMode()

	var trace bytes.Buffer
	assert.PanicsWithValue(t, "boom", func() {
		defer terminal.RestoreOnPanic(m, &trace)
		explode()
	})
	assert.False(t, m.Raw())
	assert.Contains(t, trace.String(), "panic: boom")
	assert.Contains(t, trace.String(), "explode")
}

func TestRestoreOnPanicWithoutPanic(t *testing.T) {
	m := testutil.NewFakeMode()

	var trace bytes.Buffer
	func() {
		defer terminal.RestoreOnPanic(m, &trace)
	}()

	assert.True(t, m.Raw())
	assert.Empty(t, trace.String())
	assert.Empty(t, m.Calls)
}

func explode() {
	panic("boom")
}
