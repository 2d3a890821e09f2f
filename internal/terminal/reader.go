package terminal

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// maxCSILen bounds how many bytes after ESC [ are consumed looking for a
// final byte before the sequence is dropped.
const maxCSILen = 16

// KeySource yields key events one at a time.
type KeySource interface {
	ReadKey() (Event, error)
}

// Reader decodes a raw-mode byte stream into key events.
//
// There is no escape timeout: a lone ESC is told apart from the start of a
// sequence by whether the rest of the sequence arrived in the same read,
// which is how terminals deliver them.
type Reader struct {
	in *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{in: bufio.NewReaderSize(r, 256)}
}

// ReadKey blocks until the next key is decoded. Unknown sequences come back
// as KeyNone events.
func (r *Reader) ReadKey() (Event, error) {
	for {
		ch, size, err := r.in.ReadRune()
		if err != nil {
			return Event{}, err
		}

		if ch == utf8.RuneError && size == 1 {
			continue // stray byte
		}

		if ch == 0x1b {
			return r.readEscape(), nil
		}

		return decodeRune(ch), nil
	}
}

func decodeRune(ch rune) Event {
	switch {
	case ch == '\r' || ch == '\n':
		return Event{Key: KeyEnter}
	case ch == '\t':
		return Event{Key: KeyTab}
	case ch == 0x7f:
		return Event{Key: KeyBackspace}
	case ch == 0x00:
		return Event{Key: KeyRune, Rune: ' ', Mod: ModCtrl}
	case ch < 0x1b:
		// Ctrl+A = 0x01 ... Ctrl+Z = 0x1a
		return Event{Key: KeyRune, Rune: ch + 'a' - 1, Mod: ModCtrl}
	case ch < 0x20:
		// Ctrl+\ ] ^ _
		return Event{Key: KeyRune, Rune: ch + '@', Mod: ModCtrl}
	default:
		return Event{Key: KeyRune, Rune: ch}
	}
}

func (r *Reader) readEscape() Event {
	if r.in.Buffered() == 0 {
		return Event{Key: KeyEscape}
	}

	b, _ := r.in.ReadByte()
	switch b {
	case '[':
		return r.readCSI()
	case 'O':
		if r.in.Buffered() == 0 {
			return Event{Key: KeyRune, Rune: 'O', Mod: ModAlt}
		}
		c, _ := r.in.ReadByte()
		if ev, ok := ss3Keys[c]; ok {
			return ev
		}
		return Event{}
	case 0x1b:
		_ = r.in.UnreadByte()
		return Event{Key: KeyEscape}
	}

	// ESC followed by a key is that key with alt held
	_ = r.in.UnreadByte()
	ch, size, err := r.in.ReadRune()
	if err != nil || (ch == utf8.RuneError && size == 1) {
		return Event{Key: KeyEscape}
	}
	ev := decodeRune(ch)
	ev.Mod |= ModAlt
	return ev
}

func (r *Reader) readCSI() Event {
	seq := make([]byte, 0, maxCSILen)
	for len(seq) < maxCSILen && r.in.Buffered() > 0 {
		c, _ := r.in.ReadByte()
		seq = append(seq, c)

		// final byte
		if c >= 0x40 && c <= 0x7e {
			if ev, ok := csiKeys[string(seq)]; ok {
				return ev
			}
			return Event{}
		}
	}

	return Event{}
}
