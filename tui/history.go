// Package tui provides a Bubble Tea front end for the crawl engine: a row of
// action buttons, a sub-panel of targets and a scrolling turn log.
package tui

import "github.com/nathoo/crawlcore/types"

// Entry is one resolved turn.
type Entry struct {
	Action    types.Action
	Qualifier string
	Message   string
	Err       error
}

// History is a bounded ring of turns, oldest first.
type History struct {
	entries []Entry
	max     int
}

// NewHistory creates a history keeping at most max turns.
func NewHistory(max int) *History {
	return &History{
		entries: make([]Entry, 0, max),
		max:     max,
	}
}

// Push records a turn, evicting the oldest once full.
func (h *History) Push(e Entry) {
	h.entries = append(h.entries, e)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// Entries returns the recorded turns, oldest first.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

func (h *History) Len() int { return len(h.entries) }

// Last returns the most recent turn.
func (h *History) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}
