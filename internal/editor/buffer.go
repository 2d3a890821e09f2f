// Package editor holds the in-progress command line and its cursor.
//
// The cursor is a rune index in [0, Len()].
package editor

// Buffer is the text being edited plus the cursor position.
type Buffer struct {
	runes  []rune
	cursor int
}

func New() *Buffer {
	return &Buffer{}
}

func (b *Buffer) String() string { return string(b.runes) }

func (b *Buffer) Len() int { return len(b.runes) }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) IsEmpty() bool { return len(b.runes) == 0 }

// Insert places r at the cursor and advances past it.
func (b *Buffer) Insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
}

// DeleteBeforeCursor removes the rune left of the cursor (backspace).
func (b *Buffer) DeleteBeforeCursor() {
	if len(b.runes) == 0 || b.cursor == 0 {
		return
	}

	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
}

func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *Buffer) MoveRight() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

func (b *Buffer) Home() { b.cursor = 0 }

func (b *Buffer) End() { b.cursor = len(b.runes) }

func (b *Buffer) Clear() {
	b.runes = b.runes[:0]
	b.cursor = 0
}

// ReplaceWith swaps in text (a recalled history entry) with the cursor at its end.
func (b *Buffer) ReplaceWith(text string) {
	b.runes = []rune(text)
	b.cursor = len(b.runes)
}
