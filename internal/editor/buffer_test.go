package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(b *Buffer, s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

func TestInsertAtEnd(t *testing.T) {
	b := New()
	typeText(b, "echo hi")

	assert.Equal(t, "echo hi", b.String())
	assert.Equal(t, 7, b.Cursor())
	assert.Equal(t, 7, b.Len())
}

func TestInsertMidLine(t *testing.T) {
	b := New()
	typeText(b, "ls")
	b.MoveLeft()
	b.Insert('x')

	assert.Equal(t, "lxs", b.String())
	assert.Equal(t, 2, b.Cursor())
}

func TestInsertMultibyte(t *testing.T) {
	b := New()
	typeText(b, "héllo 世界")

	assert.Equal(t, 8, b.Len())
	assert.Equal(t, 8, b.Cursor())
	b.DeleteBeforeCursor()
	assert.Equal(t, "héllo 世", b.String())
}

func TestDeleteBeforeCursor(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		moveLeft   int
		wantText   string
		wantCursor int
	}{
		{name: "empty buffer", text: "", wantText: "", wantCursor: 0},
		{name: "at end", text: "cat", wantText: "ca", wantCursor: 2},
		{name: "middle", text: "cat", moveLeft: 1, wantText: "ct", wantCursor: 1},
		{name: "at start", text: "cat", moveLeft: 3, wantText: "cat", wantCursor: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			typeText(b, tt.text)
			for i := 0; i < tt.moveLeft; i++ {
				b.MoveLeft()
			}

			require.NotPanics(t, b.DeleteBeforeCursor)
			assert.Equal(t, tt.wantText, b.String())
			assert.Equal(t, tt.wantCursor, b.Cursor())
		})
	}
}

func TestMovesClampAtBoundaries(t *testing.T) {
	b := New()
	b.MoveLeft()
	b.MoveRight()
	assert.Equal(t, 0, b.Cursor())

	typeText(b, "ab")
	b.MoveRight()
	assert.Equal(t, 2, b.Cursor())

	b.MoveLeft()
	b.MoveLeft()
	b.MoveLeft()
	assert.Equal(t, 0, b.Cursor())
}

func TestLeftThenRightIsNoop(t *testing.T) {
	b := New()
	typeText(b, "git status")

	for pos := 1; pos <= b.Len(); pos++ {
		b.End()
		for b.Cursor() > pos {
			b.MoveLeft()
		}
		before, cursor := b.String(), b.Cursor()

		b.MoveLeft()
		b.MoveRight()

		assert.Equal(t, before, b.String())
		assert.Equal(t, cursor, b.Cursor())
	}
}

func TestHomeEnd(t *testing.T) {
	b := New()
	typeText(b, "pwd")

	b.Home()
	assert.Equal(t, 0, b.Cursor())
	b.End()
	assert.Equal(t, 3, b.Cursor())
}

func TestClearAndReplace(t *testing.T) {
	b := New()
	typeText(b, "make test")
	b.MoveLeft()

	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Cursor())

	b.ReplaceWith("cd /tmp")
	assert.Equal(t, "cd /tmp", b.String())
	assert.Equal(t, 7, b.Cursor())
}
