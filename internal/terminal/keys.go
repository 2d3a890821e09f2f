package terminal

import (
	"strings"
	"unicode"
)

// Key identifies a parsed key.
type Key uint8

const (
	KeyNone Key = iota // unrecognised input, ignored by callers
	KeyRune            // character key, see Event.Rune

	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyEscape
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyEscape:    "esc",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
}

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Event is a single key press.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// String names the key the way key bindings spell it: "a", "ctrl+d",
// "alt+b", "enter", "ctrl+left". Unknown input is the empty string.
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyNone:
		return ""
	case KeyRune:
		if e.Rune == ' ' && e.Mod != ModNone {
			name = "space"
		} else {
			name = string(e.Rune)
		}
	default:
		name = keyNames[e.Key]
	}

	var b strings.Builder
	if e.Mod&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if e.Mod&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if e.Mod&ModShift != 0 && e.Key != KeyRune && e.Key != KeyBacktab {
		b.WriteString("shift+")
	}
	b.WriteString(name)

	return b.String()
}

// Printable reports whether the event inserts text: a character key
// pressed without control.
func (e Event) Printable() bool {
	return e.Key == KeyRune && e.Mod&ModCtrl == 0 && unicode.IsPrint(e.Rune)
}

// csiKeys maps the bytes after ESC [ to keys (xterm and vt variants).
var csiKeys = map[string]Event{
	"A": {Key: KeyUp},
	"B": {Key: KeyDown},
	"C": {Key: KeyRight},
	"D": {Key: KeyLeft},
	"H": {Key: KeyHome},
	"F": {Key: KeyEnd},
	"Z": {Key: KeyBacktab, Mod: ModShift},

	"1~": {Key: KeyHome},
	"2~": {Key: KeyInsert},
	"3~": {Key: KeyDelete},
	"4~": {Key: KeyEnd},
	"5~": {Key: KeyPageUp},
	"6~": {Key: KeyPageDown},
	"7~": {Key: KeyHome},
	"8~": {Key: KeyEnd},

	"1;2A": {Key: KeyUp, Mod: ModShift},
	"1;2B": {Key: KeyDown, Mod: ModShift},
	"1;2C": {Key: KeyRight, Mod: ModShift},
	"1;2D": {Key: KeyLeft, Mod: ModShift},
	"1;3A": {Key: KeyUp, Mod: ModAlt},
	"1;3B": {Key: KeyDown, Mod: ModAlt},
	"1;3C": {Key: KeyRight, Mod: ModAlt},
	"1;3D": {Key: KeyLeft, Mod: ModAlt},
	"1;5A": {Key: KeyUp, Mod: ModCtrl},
	"1;5B": {Key: KeyDown, Mod: ModCtrl},
	"1;5C": {Key: KeyRight, Mod: ModCtrl},
	"1;5D": {Key: KeyLeft, Mod: ModCtrl},
	"1;5H": {Key: KeyHome, Mod: ModCtrl},
	"1;5F": {Key: KeyEnd, Mod: ModCtrl},
	"3;5~": {Key: KeyDelete, Mod: ModCtrl},
}

// ss3Keys covers ESC O sequences sent in application cursor mode.
var ss3Keys = map[byte]Event{
	'A': {Key: KeyUp},
	'B': {Key: KeyDown},
	'C': {Key: KeyRight},
	'D': {Key: KeyLeft},
	'H': {Key: KeyHome},
	'F': {Key: KeyEnd},
}
