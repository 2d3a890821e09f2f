// Package render turns the state of a line edit into the bytes that repaint
// it on the terminal.
//
// The frame is two lines, a status line above the prompt line. Frames are
// built as strings so they can be checked without a terminal and written in
// a single call.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// DefaultPrompt is the marker in front of the edited text.
const DefaultPrompt = "~>"

// State is everything a frame depends on.
type State struct {
	Text   string
	Cursor int // rune index into Text
	Path   string
	Depth  int // history entries back from the live line, 0 when not browsing
}

// Styles colours the parts of the frame.
type Styles struct {
	Cursor lipgloss.Style
	Length lipgloss.Style
	Path   lipgloss.Style
	Depth  lipgloss.Style
	Prompt lipgloss.Style
	Error  lipgloss.Style
}

func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Cursor: r.NewStyle().Foreground(lipgloss.Color("4")),
		Length: r.NewStyle().Foreground(lipgloss.Color("1")),
		Path:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Depth:  r.NewStyle().Foreground(lipgloss.Color("3")),
		Prompt: r.NewStyle().Foreground(lipgloss.Color("5")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

type Renderer struct {
	prompt string
	styles Styles
}

// New builds a renderer whose colours follow the profile detected by r.
func New(r *lipgloss.Renderer, prompt string) *Renderer {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &Renderer{prompt: prompt, styles: DefaultStyles(r)}
}

// seq writes control sequences only, so the colour profile never matters.
func seq(b *strings.Builder) *termenv.Output {
	return termenv.NewOutput(b, termenv.WithProfile(termenv.Ascii))
}

// StatusLine is "cursor-length path", with the history depth appended while
// browsing.
func (r *Renderer) StatusLine(s State) string {
	line := fmt.Sprintf("%s-%s %s",
		r.styles.Cursor.Render(strconv.Itoa(s.Cursor)),
		r.styles.Length.Render(strconv.Itoa(len([]rune(s.Text)))),
		r.styles.Path.Render(s.Path),
	)
	if s.Depth > 0 {
		line += " " + r.styles.Depth.Render("↑"+strconv.Itoa(s.Depth))
	}
	return line
}

func (r *Renderer) PromptLine(text string) string {
	return r.styles.Prompt.Render(r.prompt) + " " + text
}

// Frame repaints both lines. With redraw set the cursor is assumed to sit on
// the prompt line of the previous frame; otherwise at the start of a fresh
// line. The cursor ends on the column of s.Cursor.
func (r *Renderer) Frame(s State, redraw bool) string {
	var b strings.Builder
	o := seq(&b)

	if redraw {
		o.CursorPrevLine(1)
	} else {
		b.WriteByte('\r')
	}
	o.ClearLine()
	b.WriteString(r.StatusLine(s))
	b.WriteString("\r\n")
	o.ClearLine()
	b.WriteString(r.PromptLine(s.Text))

	if back := columnsAfter(s.Text, s.Cursor); back > 0 {
		o.CursorBack(back)
	}

	return b.String()
}

// Commit collapses a frame into the submitted line. It expects the cursor
// one line below the prompt line (after the newline Enter emits) and leaves
// it on a cleared line beneath the command.
func (r *Renderer) Commit(text string) string {
	var b strings.Builder
	o := seq(&b)

	o.CursorPrevLine(2)
	o.ClearLine()
	b.WriteString(r.PromptLine(text))
	b.WriteString("\r\n")
	o.ClearLine()

	return b.String()
}

// ClearScreen wipes the display and homes the cursor.
func (r *Renderer) ClearScreen() string {
	var b strings.Builder
	seq(&b).ClearScreen()
	return b.String()
}

// Message formats text for a raw-mode terminal: every line ends in CRLF.
func Message(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", "\r\n") + "\r\n"
}

// ErrorMessage is Message in the error style, applied per line.
func (r *Renderer) ErrorMessage(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = r.styles.Error.Render(l)
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

// columnsAfter is the display width of the text right of the cursor.
func columnsAfter(text string, cursor int) int {
	runes := []rune(text)
	if cursor < 0 || cursor >= len(runes) {
		return 0
	}
	return runewidth.StringWidth(string(runes[cursor:]))
}
