// Package popup builds the "Trendy topics" menu shown on a right-click over
// the tape.
package popup

import (
	"strconv"
	"unicode/utf8"
)

const (
	// Title heads the menu.
	Title = "Trendy topics ...."
	// CancelLabel is the last row; choosing it closes the menu.
	CancelLabel = "Cancel"

	// MinLength is the length a segment must exceed to be listed.
	MinLength = 8
	// LabelLength is how much of a segment a row shows.
	LabelLength = 32
	// Ellipsis follows every truncated label.
	Ellipsis = "...."
)

// Entry is one listed topic.
type Entry struct {
	Number  int
	Label   string
	Segment string
}

// Text renders the row as "<n>. <label>".
func (e Entry) Text() string {
	return strconv.Itoa(e.Number) + ". " + e.Label
}

// Entries lists the segments worth showing. Short segments are skipped and
// numbering only counts the ones kept.
func Entries(segments []string) []Entry {
	var entries []Entry
	for _, s := range segments {
		if utf8.RuneCountInString(s) <= MinLength {
			continue
		}
		entries = append(entries, Entry{
			Number:  len(entries) + 1,
			Label:   truncate(s, LabelLength) + Ellipsis,
			Segment: s,
		})
	}
	return entries
}

func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Menu is an open topics menu with a cursor. The cursor ranges over the
// entries plus the trailing Cancel row.
type Menu struct {
	entries []Entry
	cursor  int
}

// NewMenu opens a menu over segments.
func NewMenu(segments []string) *Menu {
	return &Menu{entries: Entries(segments)}
}

// Entries returns the listed topics.
func (m *Menu) Entries() []Entry {
	return m.entries
}

// Rows is the number of selectable rows, Cancel included.
func (m *Menu) Rows() int {
	return len(m.entries) + 1
}

// Cursor returns the highlighted row.
func (m *Menu) Cursor() int {
	return m.cursor
}

// Up moves the cursor up, wrapping to Cancel.
func (m *Menu) Up() {
	m.cursor = (m.cursor - 1 + m.Rows()) % m.Rows()
}

// Down moves the cursor down, wrapping to the first entry.
func (m *Menu) Down() {
	m.cursor = (m.cursor + 1) % m.Rows()
}

// Select moves the cursor to row, if it exists.
func (m *Menu) Select(row int) bool {
	if row < 0 || row >= m.Rows() {
		return false
	}
	m.cursor = row
	return true
}

// OnCancel reports whether the cursor is on Cancel.
func (m *Menu) OnCancel() bool {
	return m.cursor == len(m.entries)
}

// Selected returns the entry under the cursor. It reports false on Cancel.
func (m *Menu) Selected() (Entry, bool) {
	if m.OnCancel() {
		return Entry{}, false
	}
	return m.entries[m.cursor], true
}
