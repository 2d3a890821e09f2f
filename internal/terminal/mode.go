package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"golang.org/x/term"
)

// ErrRawMode tags failures to switch the terminal mode. They are not
// recoverable by the shell.
var ErrRawMode = errors.New("raw mode")

// Mode switches the terminal between raw and cooked input.
type Mode interface {
	EnableRaw() error
	DisableRaw() error
}

// Terminal is the raw-mode controller for one file descriptor.
type Terminal struct {
	fd    int
	mu    sync.Mutex
	saved *term.State
}

func New(f *os.File) *Terminal {
	return &Terminal{fd: int(f.Fd())}
}

func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// EnableRaw saves the cooked state and enters raw mode. Calling it while
// already raw does nothing.
func (t *Terminal) EnableRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.saved != nil {
		return nil
	}

	st, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("%w: enable: %w", ErrRawMode, err)
	}
	t.saved = st
	return nil
}

// DisableRaw restores the state saved by EnableRaw. Safe to call repeatedly.
func (t *Terminal) DisableRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.saved == nil {
		return nil
	}

	if err := term.Restore(t.fd, t.saved); err != nil {
		return fmt.Errorf("%w: disable: %w", ErrRawMode, err)
	}
	t.saved = nil
	return nil
}

func (t *Terminal) Raw() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saved != nil
}

func modeErr(err error) error {
	if err == nil || errors.Is(err, ErrRawMode) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrRawMode, err)
}

// Suspend runs fn with raw mode off and turns it back on once fn returns,
// whether or not fn failed. If fn panics the terminal is left cooked and the
// panic continues.
func Suspend(m Mode, fn func() error) (err error) {
	if err := m.DisableRaw(); err != nil {
		return modeErr(err)
	}

	returned := false
	defer func() {
		if !returned {
			return
		}
		if rerr := m.EnableRaw(); rerr != nil {
			err = errors.Join(err, modeErr(rerr))
		}
	}()

	err = fn()
	returned = true
	return err
}

// RestoreOnPanic leaves raw mode and writes the stack of the fault to trace
// before the panic keeps unwinding, since the re-panic is reported from here.
// It must be deferred directly so recover sees the panic.
func RestoreOnPanic(m Mode, trace io.Writer) {
	if r := recover(); r != nil {
		_ = m.DisableRaw()
		fmt.Fprintf(trace, "panic: %v\nStack Trace:\n%s\n", r, debug.Stack())
		panic(r)
	}
}
