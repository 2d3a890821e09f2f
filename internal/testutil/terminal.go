// Package testutil provides fakes for the terminal side of the shell.
package testutil

import (
	"io"

	"github.com/Neev4n/eish/internal/terminal"
)

// FakeMode records raw-mode switches instead of touching a terminal.
type FakeMode struct {
	raw bool

	EnableErr  error
	DisableErr error
	Calls      []string
}

// NewFakeMode returns a mode that starts raw, as the shell runs.
func NewFakeMode() *FakeMode {
	return &FakeMode{raw: true}
}

func (m *FakeMode) EnableRaw() error {
	m.Calls = append(m.Calls, "enable")
	if m.EnableErr != nil {
		return m.EnableErr
	}
	m.raw = true
	return nil
}

func (m *FakeMode) DisableRaw() error {
	m.Calls = append(m.Calls, "disable")
	if m.DisableErr != nil {
		return m.DisableErr
	}
	m.raw = false
	return nil
}

func (m *FakeMode) Raw() bool { return m.raw }

// Keys replays a fixed list of events, then reports io.EOF.
type Keys struct {
	events []terminal.Event
	Err    error // returned instead of io.EOF once drained
}

func NewKeys(events ...terminal.Event) *Keys {
	return &Keys{events: events}
}

func (k *Keys) ReadKey() (terminal.Event, error) {
	if len(k.events) == 0 {
		if k.Err != nil {
			return terminal.Event{}, k.Err
		}
		return terminal.Event{}, io.EOF
	}
	ev := k.events[0]
	k.events = k.events[1:]
	return ev, nil
}

func (k *Keys) Remaining() int { return len(k.events) }

// Type expands text into one rune event per character.
func Type(text string) []terminal.Event {
	events := make([]terminal.Event, 0, len(text))
	for _, r := range text {
		events = append(events, terminal.Event{Key: terminal.KeyRune, Rune: r})
	}
	return events
}

func Key(k terminal.Key) terminal.Event {
	return terminal.Event{Key: k}
}

func Ctrl(r rune) terminal.Event {
	return terminal.Event{Key: terminal.KeyRune, Rune: r, Mod: terminal.ModCtrl}
}

// Script concatenates event groups built with Type, Key and Ctrl.
func Script(parts ...any) []terminal.Event {
	var out []terminal.Event
	for _, p := range parts {
		switch v := p.(type) {
		case terminal.Event:
			out = append(out, v)
		case []terminal.Event:
			out = append(out, v...)
		case string:
			out = append(out, Type(v)...)
		}
	}
	return out
}
