package ticker

import "github.com/mattn/go-runewidth"

// Measure returns the rendered width of s in terminal cells.
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// Load measures raw and splits it on delim. This is what the tape does
// after laying the text out.
func Load(raw string, delim rune) Content {
	return SplitOn(raw, delim, float64(Measure(raw)))
}
