// Package history keeps previously submitted command lines and the
// navigation state of the line currently being edited.
//
// While a line is being edited the store holds one extra entry at its end,
// the tail slot, which mirrors the in-progress text. Every Session ends by
// either finalizing or discarding that slot, exactly once.
package history

import "github.com/sahilm/fuzzy"

// DefaultLimit caps the number of stored entries when none is configured.
const DefaultLimit = 1000

// Store is an ordered list of past commands, oldest first.
type Store struct {
	entries []string
	limit   int
}

func New(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{limit: limit}
}

// Entries returns a copy of the stored commands.
func (s *Store) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int { return len(s.entries) }

// Append records finished commands directly, bypassing the tail slot.
func (s *Store) Append(lines ...string) {
	s.entries = append(s.entries, lines...)
	s.trim()
}

func (s *Store) trim() {
	if over := len(s.entries) - s.limit; over > 0 {
		s.entries = append([]string(nil), s.entries[over:]...)
	}
}

// Session is the history view of one line read.
type Session struct {
	store *Store
	input int // tail slot
	pos   int
	query string
	done  bool
}

// Begin stages an empty tail entry and starts viewing it.
func (s *Store) Begin() *Session {
	s.entries = append(s.entries, "")
	tail := len(s.entries) - 1

	return &Session{store: s, input: tail, pos: tail}
}

// Depth is how many entries back from the live line the session is viewing.
func (hs *Session) Depth() int { return hs.input - hs.pos }

// Stage mirrors live edits into the tail while it is being viewed.
func (hs *Session) Stage(text string) {
	if hs.done || hs.pos != hs.input {
		return
	}
	hs.store.entries[hs.input] = text
}

// Up moves one entry back. Leaving the tail snapshots current into it so the
// in-progress line can be recovered with Down.
func (hs *Session) Up(current string) (string, bool) {
	if hs.done || hs.pos == 0 {
		return "", false
	}

	if hs.pos == hs.input {
		hs.store.entries[hs.input] = current
	}
	hs.pos--

	return hs.store.entries[hs.pos], true
}

// Down moves one entry forward, stopping at the tail.
func (hs *Session) Down() (string, bool) {
	if hs.done || hs.pos >= hs.input {
		return "", false
	}

	hs.pos++
	return hs.store.entries[hs.pos], true
}

// Search fuzzy-matches against entries older than the current position and
// jumps to the best hit. The query is taken from current when starting at the
// tail and reused while browsing, so repeated searches walk further back.
func (hs *Session) Search(current string) (string, bool) {
	if hs.done {
		return "", false
	}
	if hs.pos == hs.input {
		hs.query = current
	}
	if hs.query == "" || hs.pos == 0 {
		return "", false
	}

	best := -1
	bestScore := 0
	for _, m := range fuzzy.FindNoSort(hs.query, hs.store.entries[:hs.pos]) {
		// later entries win ties
		if best < 0 || m.Score >= bestScore {
			best, bestScore = m.Index, m.Score
		}
	}
	if best < 0 {
		return "", false
	}

	if hs.pos == hs.input {
		hs.store.entries[hs.input] = current
	}
	hs.pos = best

	return hs.store.entries[hs.pos], true
}

// Finalize records the submitted text. When the entry just above the tail is
// identical the tail is dropped instead, so re-running the previous command
// does not add a copy. Only that one entry is compared.
func (hs *Session) Finalize(text string) {
	if hs.done {
		return
	}
	hs.done = true

	s := hs.store
	if hs.input > 0 && s.entries[hs.input-1] == text {
		s.removeTail(hs.input)
		return
	}

	s.entries[hs.input] = text
	s.trim()
}

// Discard drops the tail without recording anything.
func (hs *Session) Discard() {
	if hs.done {
		return
	}
	hs.done = true
	hs.store.removeTail(hs.input)
}

func (s *Store) removeTail(idx int) {
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
}
