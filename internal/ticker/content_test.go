package ticker

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEmpty(t *testing.T) {
	for _, width := range []float64{0, 1, 640} {
		c := Split("", width)
		assert.Empty(t, c.Segments, "width %v", width)
		assert.Empty(t, c.Boundaries, "width %v", width)
		assert.True(t, c.Empty())
	}
}

func TestSplitSegmentsBoundedByDelimiters(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		width      float64
		segments   []string
		boundaries []float64
	}{
		{
			name:       "delimited on both sides, trailing text dropped",
			raw:        "#abc#def#ghi",
			width:      12,
			segments:   []string{"abc", "def"},
			boundaries: []float64{4, 8},
		},
		{
			name:       "leading text is never a segment",
			raw:        "abc#def#ghi",
			width:      11,
			segments:   []string{"def"},
			boundaries: []float64{7},
		},
		{
			name:  "single delimiter only opens a segment",
			raw:   "abc#def",
			width: 7,
		},
		{
			name:       "single closed segment",
			raw:        "#abc#def",
			width:      8,
			segments:   []string{"abc"},
			boundaries: []float64{4},
		},
		{
			name:  "no delimiter",
			raw:   "plain text",
			width: 10,
		},
		{
			name:       "whitespace is kept for the consumer",
			raw:        "# one # two #",
			width:      26,
			segments:   []string{" one ", " two "},
			boundaries: []float64{12, 24},
		},
		{
			name:       "adjacent delimiters give an empty segment",
			raw:        "#a##b#",
			width:      6,
			segments:   []string{"a", "", "b"},
			boundaries: []float64{2, 3, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Split(tt.raw, tt.width)
			if diff := cmp.Diff(tt.segments, c.Segments); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.boundaries, c.Boundaries); diff != "" {
				t.Errorf("boundaries mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.raw, c.Raw)
		})
	}
}

func TestSplitScalesByAverageCharWidth(t *testing.T) {
	c := Split("#abc#def#ghi", 24)
	assert.Equal(t, []float64{8, 16}, c.Boundaries)
}

func TestSplitNegativeWidth(t *testing.T) {
	c := Split("#abc#def#", -9)
	assert.Equal(t, []string{"abc", "def"}, c.Segments)
	assert.Equal(t, []float64{0, 0}, c.Boundaries)

	_, ok := c.SegmentAt(1)
	assert.False(t, ok)
}

func TestSplitOnCustomDelimiter(t *testing.T) {
	c := SplitOn("|a|b|", '|', 5)
	assert.Equal(t, []string{"a", "b"}, c.Segments)
	assert.Equal(t, []float64{2, 4}, c.Boundaries)

	// '#' is plain text under another delimiter.
	c = SplitOn("|a#b|", '|', 5)
	assert.Equal(t, []string{"a#b"}, c.Segments)
}

func TestSplitCountsRunes(t *testing.T) {
	raw := "#日本#語#"
	c := Load(raw, DefaultDelimiter)

	require.Equal(t, 9, Measure(raw))
	assert.Equal(t, []string{"日本", "語"}, c.Segments)
	assert.Equal(t, []float64{4.5, 7.5}, c.Boundaries)
}

func TestSplitInvariants(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"##",
		"###",
		"no delimiters here",
		"#one#two#three#",
		"lead#one#two#tail",
		"# spaced # out # topics #",
		"#a##b###c#",
		"#Élan vital#Ünïcödé#",
	}

	for _, raw := range inputs {
		c := Load(raw, DefaultDelimiter)
		require.Len(t, c.Boundaries, len(c.Segments), "raw %q", raw)

		for i := 1; i < len(c.Boundaries); i++ {
			assert.LessOrEqual(t, c.Boundaries[i-1], c.Boundaries[i], "raw %q boundary %d", raw, i)
		}

		delims := strings.Count(raw, "#")
		want := 0
		if delims > 1 {
			want = delims - 1
		}
		assert.Equal(t, want, c.Len(), "raw %q: %d delimiters", raw, delims)
	}
}

func TestSegmentAt(t *testing.T) {
	c := Split("#abc#def#ghi", 12)

	tests := []struct {
		x    float64
		want string
		ok   bool
	}{
		{x: -5, want: "abc", ok: true},
		{x: 0, want: "abc", ok: true},
		{x: 3.9, want: "abc", ok: true},
		{x: 4, want: "def", ok: true},
		{x: 7.99, want: "def", ok: true},
		{x: 8, ok: false},
		{x: 11, ok: false},
		{x: 400, ok: false},
	}

	for _, tt := range tests {
		got, ok := c.SegmentAt(tt.x)
		assert.Equal(t, tt.ok, ok, "x=%v", tt.x)
		assert.Equal(t, tt.want, got, "x=%v", tt.x)
	}
}

func TestSegmentAtEmptyContent(t *testing.T) {
	var c Content
	got, ok := c.SegmentAt(0)
	assert.False(t, ok)
	assert.Empty(t, got)

	got, ok = Split("abc#def", 7).SegmentAt(0)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestEverySegmentIsReachable(t *testing.T) {
	c := Split("#one#two#three#four", 19)
	require.Equal(t, 3, c.Len())

	seen := map[string]bool{}
	for x := 0.0; x < 19; x += 0.5 {
		if s, ok := c.SegmentAt(x); ok {
			seen[s] = true
		}
	}
	assert.Equal(t, map[string]bool{"one": true, "two": true, "three": true}, seen)
}
