package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a program cannot be located.
var ErrNotFound = errors.New("not found")

// Executor runs an external program in dir and reports its exit code.
// A non-zero exit is not an error.
type Executor interface {
	Execute(ctx context.Context, dir, name string, args []string, io IOBindings) (int, error)
}

type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommandExecutor starts programs with os/exec.
type CommandExecutor struct {
	LookupFunc func(name string) (string, bool)
}

func (e *CommandExecutor) Execute(ctx context.Context, dir, name string, args []string, io IOBindings) (int, error) {
	path, ok := e.LookupFunc(name)
	if !ok {
		return -1, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	externalCmd := exec.CommandContext(ctx, path, args...)
	externalCmd.Args = append([]string{name}, args...)
	externalCmd.Dir = dir
	externalCmd.Stdin = io.Stdin
	externalCmd.Stdout = io.Stdout
	externalCmd.Stderr = io.Stderr

	// ctrl+c goes to the whole foreground group; only the child should die.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	if err := externalCmd.Start(); err != nil {
		return -1, fmt.Errorf("starting %s: %w", name, err)
	}

	if err := externalCmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("waiting for %s: %w", name, err)
	}

	return 0, nil
}

// PathLookup resolves program names against a fixed list of directories.
type PathLookup struct {
	dirs []string
}

// NewPathLookup splits a PATH-style value.
func NewPathLookup(pathEnv string) *PathLookup {
	var dirs []string
	if pathEnv != "" {
		dirs = strings.Split(pathEnv, string(os.PathListSeparator))
	}
	return &PathLookup{dirs: dirs}
}

// Lookup finds an executable. Names containing a slash are taken as given
// and only reported missing when nothing exists there; a file that cannot be
// run is left for Execute to fail on with the OS error.
func (l *PathLookup) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if strings.ContainsRune(name, '/') {
		_, err := os.Stat(name)
		return name, !errors.Is(err, fs.ErrNotExist)
	}

	for _, dir := range l.dirs {
		pathToCheck := filepath.Join(dir, name)
		if isExecutable(pathToCheck) {
			return pathToCheck, true
		}
	}

	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&0o111 != 0
}
