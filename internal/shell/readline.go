package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Neev4n/eish/internal/editor"
	"github.com/Neev4n/eish/internal/history"
	"github.com/Neev4n/eish/internal/render"
)

// readLine runs one edit session. It returns the submitted text, ErrExit
// when the user asks to leave, the context error when ctx is cancelled, or a
// terminal error. History is finalized
// only for submitted lines that can run.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	buf := editor.New()
	hs := s.history.Begin()
	redraw := false

	for {
		if err := s.write(s.renderer.Frame(s.state(buf, hs), redraw)); err != nil {
			hs.Discard()
			return "", err
		}
		redraw = true

		ev, err := s.readKey(ctx)
		if err != nil {
			hs.Discard()
			switch {
			case errors.Is(err, io.EOF):
				return "", s.leave()
			case ctx.Err() != nil:
				_ = s.write("\r\n")
				return "", err
			}
			return "", fmt.Errorf("reading key: %w", err)
		}

		switch {
		case key.Matches(ev, s.keymap.Submit):
			text := buf.String()
			if s.runnable(text) {
				hs.Finalize(text)
			} else {
				hs.Discard()
			}
			if err := s.write("\r\n" + s.renderer.Commit(text)); err != nil {
				return "", err
			}
			return text, nil

		case key.Matches(ev, s.keymap.Exit):
			if !buf.IsEmpty() {
				continue
			}
			hs.Discard()
			return "", s.leave()

		case key.Matches(ev, s.keymap.Interrupt):
			buf.Clear()
			hs.Stage("")
			if err := s.write("\r\n"); err != nil {
				hs.Discard()
				return "", err
			}
			redraw = false

		case key.Matches(ev, s.keymap.ClearScreen):
			if err := s.write(s.renderer.ClearScreen()); err != nil {
				hs.Discard()
				return "", err
			}
			redraw = false

		case key.Matches(ev, s.keymap.Backspace):
			buf.DeleteBeforeCursor()
			hs.Stage(buf.String())
		case key.Matches(ev, s.keymap.Left):
			buf.MoveLeft()
		case key.Matches(ev, s.keymap.Right):
			buf.MoveRight()
		case key.Matches(ev, s.keymap.Home):
			buf.Home()
		case key.Matches(ev, s.keymap.End):
			buf.End()

		case key.Matches(ev, s.keymap.HistoryPrev):
			if text, ok := hs.Up(buf.String()); ok {
				buf.ReplaceWith(text)
			}
		case key.Matches(ev, s.keymap.HistoryNext):
			if text, ok := hs.Down(); ok {
				buf.ReplaceWith(text)
			}
		case key.Matches(ev, s.keymap.Search):
			if text, ok := hs.Search(buf.String()); ok {
				buf.ReplaceWith(text)
			}

		case ev.Printable():
			buf.Insert(ev.Rune)
			hs.Stage(buf.String())
		}
	}
}

// leave moves off the prompt line and reports ErrExit.
func (s *Shell) leave() error {
	if err := s.write("\r\n"); err != nil {
		return err
	}
	return ErrExit
}

func (s *Shell) state(buf *editor.Buffer, hs *history.Session) render.State {
	return render.State{
		Text:   buf.String(),
		Cursor: buf.Cursor(),
		Path:   s.path,
		Depth:  hs.Depth(),
	}
}
