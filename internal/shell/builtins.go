package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// Builtin runs inside the shell process. Returning ErrExit ends the session.
type Builtin func(args []string, s *Shell) error

func (s *Shell) registerBuiltins() {
	s.builtins["exit"] = func(args []string, s *Shell) error {
		if s.farewell != "" {
			if err := s.print(s.farewell); err != nil {
				return err
			}
		}
		return ErrExit
	}

	s.builtins["cd"] = func(args []string, s *Shell) error {
		switch len(args) {
		case 0:
			return s.print(s.path)
		case 1:
		default:
			return s.printError("cd: too many arguments")
		}

		target := args[0]
		if target == "~" || strings.HasPrefix(target, "~/") {
			home := os.Getenv("HOME")
			if home == "" {
				return s.printError("cd: HOME not set")
			}
			if target == "~" {
				target = home
			} else {
				target = filepath.Join(home, target[2:])
			}
		}

		if !filepath.IsAbs(target) {
			target = filepath.Join(s.path, target)
		}

		if err := os.Chdir(target); err != nil {
			return s.printError(cdError(args[0], err))
		}

		s.path = filepath.Clean(target)
		s.logger.Debug("changed directory", "path", s.path)
		return nil
	}
}

func cdError(target string, err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("cd: %s: No such file or directory", target)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Sprintf("cd: %s: Permission denied", target)
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Sprintf("cd: %s: Not a directory", target)
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return fmt.Sprintf("cd: %s: %v", target, err)
}
