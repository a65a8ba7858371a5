package popup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesFiltersShortSegments(t *testing.T) {
	segments := []string{
		" Mars ",                  // 6, skipped
		"12345678",                // exactly 8, skipped
		"123456789",               // 9, kept
		" Solar panels record ",   // kept
		"",                        // skipped
	}

	entries := Entries(segments)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Number)
	assert.Equal(t, "123456789....", entries[0].Label)
	assert.Equal(t, "123456789", entries[0].Segment)

	assert.Equal(t, 2, entries[1].Number)
	assert.Equal(t, " Solar panels record ....", entries[1].Label)
	assert.Equal(t, "2.  Solar panels record ....", entries[1].Text())
}

func TestEntriesTruncatesLabels(t *testing.T) {
	long := strings.Repeat("a", 40)
	entries := Entries([]string{long})
	require.Len(t, entries, 1)
	assert.Equal(t, strings.Repeat("a", LabelLength)+Ellipsis, entries[0].Label)
	assert.Equal(t, long, entries[0].Segment, "segment keeps the full text")

	wide := strings.Repeat("話", 35)
	entries = Entries([]string{wide})
	require.Len(t, entries, 1)
	assert.Equal(t, strings.Repeat("話", LabelLength)+Ellipsis, entries[0].Label)
}

func TestEntriesEmpty(t *testing.T) {
	assert.Empty(t, Entries(nil))
	assert.Empty(t, Entries([]string{"short", "tiny"}))
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenu([]string{"first long topic", "second long topic"})
	require.Equal(t, 3, m.Rows())

	e, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "first long topic", e.Segment)

	m.Down()
	e, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, "second long topic", e.Segment)

	m.Down()
	assert.True(t, m.OnCancel())
	_, ok = m.Selected()
	assert.False(t, ok)

	m.Down()
	assert.Equal(t, 0, m.Cursor(), "down wraps to the top")

	m.Up()
	assert.True(t, m.OnCancel(), "up wraps to cancel")
}

func TestMenuSelect(t *testing.T) {
	m := NewMenu([]string{"first long topic"})
	assert.True(t, m.Select(1))
	assert.True(t, m.OnCancel())
	assert.False(t, m.Select(2))
	assert.False(t, m.Select(-1))
	assert.Equal(t, 1, m.Cursor())
}

func TestMenuWithoutEntriesOnlyCancels(t *testing.T) {
	m := NewMenu([]string{"short"})
	assert.Equal(t, 1, m.Rows())
	assert.True(t, m.OnCancel())
	m.Down()
	assert.True(t, m.OnCancel())
}
