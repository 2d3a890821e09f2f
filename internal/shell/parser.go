package shell

import "strings"

// Parser turns a command line into a program name and its arguments.
type Parser interface {
	Parse(line string) ([]string, error)
}

// SpaceParser splits on single spaces. There is no quoting or escaping, and
// consecutive spaces yield empty arguments.
type SpaceParser struct{}

func (SpaceParser) Parse(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	return strings.Split(line, " "), nil
}
