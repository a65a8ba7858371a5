package ticker

// DefaultDelimiter separates stories on the tape.
const DefaultDelimiter = '#'

// Content is the split form of the tape text. It is immutable once built;
// a reload produces a new Content.
type Content struct {
	// Raw is the full tape text as rendered.
	Raw string
	// Segments holds the delimiter-bounded stories, untrimmed.
	Segments []string
	// Boundaries holds the right edge of each segment, in cells from the
	// start of the tape text.
	Boundaries []float64
}

// Split splits raw on DefaultDelimiter. measuredWidth is the rendered width
// of raw, in cells.
func Split(raw string, measuredWidth float64) Content {
	return SplitOn(raw, DefaultDelimiter, measuredWidth)
}

// SplitOn splits raw into segments bounded on both sides by delim.
//
// The first delimiter only opens a segment; each later delimiter closes the
// one before it. Text ahead of the first delimiter and after the last one is
// never selectable, so N delimiters yield N-1 segments.
//
// Each boundary is the rune index of the closing delimiter times the average
// cell width of raw. A negative width counts as zero.
func SplitOn(raw string, delim rune, measuredWidth float64) Content {
	content := Content{Raw: raw}

	runes := []rune(raw)
	if len(runes) == 0 {
		return content
	}
	avgCharWidth := max(measuredWidth, 0) / float64(len(runes))

	open := -1
	for i, r := range runes {
		if r != delim {
			continue
		}
		if open >= 0 {
			content.Segments = append(content.Segments, string(runes[open+1:i]))
			content.Boundaries = append(content.Boundaries, float64(i)*avgCharWidth)
		}
		open = i
	}
	return content
}

// SegmentAt returns the segment under offset x, measured in cells from the
// start of the tape text. It reports false when x lies at or past the last
// boundary.
func (c Content) SegmentAt(x float64) (string, bool) {
	for i, boundary := range c.Boundaries {
		if x < boundary {
			return c.Segments[i], true
		}
	}
	return "", false
}

// Len returns the number of selectable segments.
func (c Content) Len() int {
	return len(c.Segments)
}

// Empty reports whether the tape has no selectable segment.
func (c Content) Empty() bool {
	return len(c.Segments) == 0
}
