// Package cli wires configuration, logging and the terminal into a shell
// session.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Neev4n/eish/internal/config"
	"github.com/Neev4n/eish/internal/history"
	"github.com/Neev4n/eish/internal/logging"
	"github.com/Neev4n/eish/internal/render"
	"github.com/Neev4n/eish/internal/shell"
	"github.com/Neev4n/eish/internal/terminal"
)

var (
	// ErrNotTerminal is returned when stdin cannot be put into raw mode.
	ErrNotTerminal = errors.New("stdin is not a terminal")
	// ErrTerminated is returned when SIGTERM or SIGHUP ends the session.
	ErrTerminated = errors.New("terminated by signal")
)

// NewRootCmd builds the eish command. It takes no flags or arguments;
// settings come from the config file and EISH_* variables.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eish",
		Short: "A small interactive shell with a live status line",
		Long: `eish reads commands with in-place line editing, history recall and
fuzzy history search, then runs them as programs on PATH.

Settings are read from $EISH_CONFIG or ~/.config/eish/config.yaml and can be
overridden with EISH_* environment variables (for example EISH_HISTORY_FILE).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}

func Execute() error {
	return NewRootCmd().Execute()
}

func run(ctx context.Context, in, out *os.File) (err error) {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = logOut
	logger := logging.New(logCfg).WithSession(uuid.NewString())
	if err := logger.Redact(cfg.Log.Redact...); err != nil {
		return err
	}
	logger.Debug("config loaded", "file", loader.ConfigFileUsed())

	term := terminal.New(in)
	if !term.IsTerminal() {
		return ErrNotTerminal
	}

	if err := term.EnableRaw(); err != nil {
		return err
	}
	defer func() {
		if derr := term.DisableRaw(); derr != nil && err == nil {
			err = derr
		}
	}()
	defer terminal.RestoreOnPanic(term, os.Stderr)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	sh := shell.New(terminal.NewReader(in), out, term,
		shell.WithRenderer(render.New(lipgloss.NewRenderer(out), cfg.Prompt.Marker)),
		shell.WithHistory(loadHistory(cfg.History, logger)),
		shell.WithLogger(logger),
		shell.WithCommentPrefix(cfg.Prompt.CommentPrefix),
		shell.WithGreeting(cfg.Prompt.Greeting),
		shell.WithFarewell(cfg.Prompt.Farewell),
		shell.WithStdio(shell.IOBindings{Stdin: in, Stdout: out, Stderr: os.Stderr}),
	)

	runErr := sh.Run(ctx)

	if cfg.History.File != "" {
		if err := sh.History().Save(cfg.History.File); err != nil {
			logger.Warn("saving history failed", "file", cfg.History.File, "error", err)
		}
	}

	return sessionError(ctx, runErr)
}

// sessionError reports a shell stopped by a signal as ErrTerminated.
func sessionError(ctx context.Context, err error) error {
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return ErrTerminated
	}
	return err
}

// loadHistory reads the history file, starting empty if it is unreadable.
func loadHistory(cfg config.HistoryConfig, logger *logging.Logger) *history.Store {
	if cfg.File == "" {
		return history.New(cfg.Limit)
	}

	store, err := history.Load(cfg.File, cfg.Limit)
	if err != nil {
		logger.Warn("loading history failed", "file", cfg.File, "error", err)
		return history.New(cfg.Limit)
	}

	logger.Debug("history loaded", "file", cfg.File, "entries", store.Len())
	return store
}

// openLog opens the log file for appending. No file means no logs.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
