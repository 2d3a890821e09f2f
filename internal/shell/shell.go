// Package shell is the interactive session: it reads edited lines from a raw
// terminal and dispatches them to builtins or external programs.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Neev4n/eish/internal/history"
	"github.com/Neev4n/eish/internal/logging"
	"github.com/Neev4n/eish/internal/render"
	"github.com/Neev4n/eish/internal/terminal"
)

// ErrExit ends the session without error.
var ErrExit = errors.New("exit")

type Shell struct {
	keys  terminal.KeySource
	out   io.Writer
	mode  terminal.Mode
	stdio IOBindings

	renderer *render.Renderer
	keymap   KeyMap
	history  *history.Store
	parser   Parser
	executor Executor
	builtins map[string]Builtin
	logger   *logging.Logger

	path          string
	commentPrefix string
	greeting      string
	farewell      string

	pending chan keyResult // read in flight, survives a cancelled wait
}

type keyResult struct {
	ev  terminal.Event
	err error
}

// Option configures a Shell.
type Option func(*Shell)

func WithRenderer(r *render.Renderer) Option { return func(s *Shell) { s.renderer = r } }

func WithHistory(h *history.Store) Option { return func(s *Shell) { s.history = h } }

func WithExecutor(e Executor) Option { return func(s *Shell) { s.executor = e } }

func WithLogger(l *logging.Logger) Option { return func(s *Shell) { s.logger = l } }

// WithPath sets the starting directory instead of InitialPath.
func WithPath(path string) Option { return func(s *Shell) { s.path = path } }

// WithStdio sets the streams handed to external programs.
func WithStdio(io IOBindings) Option { return func(s *Shell) { s.stdio = io } }

// WithCommentPrefix sets the marker of lines that are ignored. Empty
// disables comments.
func WithCommentPrefix(p string) Option { return func(s *Shell) { s.commentPrefix = p } }

func WithGreeting(text string) Option { return func(s *Shell) { s.greeting = text } }

func WithFarewell(text string) Option { return func(s *Shell) { s.farewell = text } }

// New creates a shell reading keys from keys and painting to out. mode is
// switched off around external programs.
func New(keys terminal.KeySource, out io.Writer, mode terminal.Mode, opts ...Option) *Shell {
	s := &Shell{
		keys:          keys,
		out:           out,
		mode:          mode,
		stdio:         IOBindings{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
		keymap:        DefaultKeyMap(),
		parser:        SpaceParser{},
		builtins:      make(map[string]Builtin),
		commentPrefix: "//",
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.renderer == nil {
		s.renderer = render.New(lipgloss.NewRenderer(out), render.DefaultPrompt)
	}
	if s.history == nil {
		s.history = history.New(history.DefaultLimit)
	}
	if s.executor == nil {
		s.executor = &CommandExecutor{LookupFunc: NewPathLookup(os.Getenv("PATH")).Lookup}
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.path == "" {
		s.path = InitialPath()
	}

	s.registerBuiltins()
	return s
}

// InitialPath is the process working directory, or HOME when it cannot be
// determined.
func InitialPath() string {
	if dir, err := os.Getwd(); err == nil {
		return dir
	}
	return os.Getenv("HOME")
}

// Path is the current directory of the session.
func (s *Shell) Path() string { return s.path }

// History is the store the session records into.
func (s *Shell) History() *history.Store { return s.history }

// Run greets, then reads and dispatches lines until exit. Terminal failures
// and the cancellation of ctx are returned.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info("session started", "path", s.path)
	defer s.logger.Info("session ended", "history", s.history.Len())

	if s.greeting != "" {
		if err := s.print(s.greeting); err != nil {
			return err
		}
	}

	for {
		line, err := s.readLine(ctx)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.Dispatch(ctx, line); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
}

// Dispatch runs one submitted line. User errors are printed and reported as
// nil; ErrExit and terminal failures are returned.
func (s *Shell) Dispatch(ctx context.Context, line string) error {
	if !s.runnable(line) {
		return nil
	}

	fields, err := s.parser.Parse(line)
	if err != nil {
		return s.printError(err.Error())
	}
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]
	s.logger.Debug("dispatch", "command", name, "args", args)

	if fn, ok := s.builtins[name]; ok {
		return fn(args, s)
	}

	return s.runExternal(ctx, name, args)
}

func (s *Shell) runExternal(ctx context.Context, name string, args []string) error {
	log := s.logger.With("command", name)

	var code int
	err := terminal.Suspend(s.mode, func() error {
		var err error
		code, err = s.executor.Execute(ctx, s.path, name, args, s.stdio)
		return err
	})

	switch {
	case err == nil:
		log.Debug("command finished", "exit_code", code)
		return nil
	case errors.Is(err, terminal.ErrRawMode):
		return err
	case errors.Is(err, ErrNotFound):
		log.Debug("command not found")
		return s.print("Unknown command")
	default:
		log.Warn("command failed", "error", err)
		return s.printError("Error running command: " + err.Error())
	}
}

// readKey waits for the next key or for ctx. At most one read is in flight,
// so keys are never taken from stdin ahead of a child program.
func (s *Shell) readKey(ctx context.Context) (terminal.Event, error) {
	if s.pending == nil {
		ch := make(chan keyResult, 1)
		go func() {
			ev, err := s.keys.ReadKey()
			ch <- keyResult{ev: ev, err: err}
		}()
		s.pending = ch
	}

	select {
	case <-ctx.Done():
		return terminal.Event{}, ctx.Err()
	case r := <-s.pending:
		s.pending = nil
		return r.ev, r.err
	}
}

// runnable reports whether a line is neither blank nor a comment.
func (s *Shell) runnable(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return s.commentPrefix == "" || !strings.HasPrefix(trimmed, s.commentPrefix)
}

func (s *Shell) write(str string) error {
	if _, err := io.WriteString(s.out, str); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}

func (s *Shell) print(text string) error {
	return s.write(render.Message(text))
}

func (s *Shell) printError(text string) error {
	return s.write(s.renderer.ErrorMessage(text))
}
