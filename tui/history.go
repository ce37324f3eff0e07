package tui

import (
	"strconv"
	"strings"
)

// History keeps typed choices for Up/Down recall. Option numbers, repeats
// and meta commands are not kept: a number picks a different option on
// every level, and the others are one keystroke anyway.
type History struct {
	entries []string
	limit   int
	pos     int // len(entries) when not browsing
}

// NewHistory creates a history that remembers at most limit choices.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add records a submitted line and stops browsing. An earlier copy of the
// same choice moves to the newest slot.
func (h *History) Add(line string) {
	defer h.Rewind()
	line = strings.TrimSpace(line)
	if !recallable(line) {
		return
	}
	for i, e := range h.entries {
		if strings.EqualFold(e, line) {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Older steps back one entry. It stops at the oldest.
func (h *History) Older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.entries[h.pos], true
}

// Newer steps forward one entry. Past the newest it reports false and the
// caller clears the input.
func (h *History) Newer() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return "", false
	}
	return h.entries[h.pos], true
}

// Rewind stops browsing; the next Older returns the newest entry.
func (h *History) Rewind() {
	h.pos = len(h.entries)
}

func recallable(line string) bool {
	if line == "" || strings.HasPrefix(line, "/") {
		return false
	}
	switch strings.ToLower(line) {
	case "again", "g":
		return false
	}
	if _, err := strconv.Atoi(line); err == nil {
		return false
	}
	return true
}
