package shell

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the editing actions of the prompt. Keys are spelled the way
// terminal.Event.String names them.
type KeyMap struct {
	Exit        key.Binding
	Interrupt   key.Binding
	ClearScreen key.Binding
	Submit      key.Binding

	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding

	HistoryPrev key.Binding
	HistoryNext key.Binding
	Search      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Exit:        key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "exit on empty line")),
		Interrupt:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "discard line")),
		ClearScreen: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear screen")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),

		HistoryPrev: key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous command")),
		HistoryNext: key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next command")),
		Search:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "search history")),
	}
}
