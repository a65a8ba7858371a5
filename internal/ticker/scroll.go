package ticker

// Scroller moves the tape text right to left across a fixed viewport. Left
// is the column of the first text cell relative to the viewport and goes
// negative once the text starts leaving on the left.
type Scroller struct {
	viewport int
	content  int
	gap      int
	speed    int
	left     int
	paused   bool
}

// NewScroller creates a scroller for text of contentWidth cells. The text
// enters from gap cells past the right edge.
func NewScroller(viewport, contentWidth, gap, speed int) *Scroller {
	if speed <= 0 {
		speed = 1
	}
	if gap < 0 {
		gap = 0
	}
	s := &Scroller{
		viewport: viewport,
		content:  contentWidth,
		gap:      gap,
		speed:    speed,
	}
	s.Rewind()
	return s
}

// Step advances one animation tick. Once the text is gap cells past the
// left edge it wraps back to the right.
func (s *Scroller) Step() {
	if s.paused {
		return
	}
	if s.left > -s.gap-s.content {
		s.left -= s.speed
		return
	}
	s.Rewind()
}

// Rewind puts the text back at its entry column.
func (s *Scroller) Rewind() {
	s.left = s.viewport + s.gap
}

// Resize changes the viewport width. The current position is kept.
func (s *Scroller) Resize(viewport int) {
	s.viewport = viewport
}

// SetContentWidth replaces the text width and restarts the scroll.
func (s *Scroller) SetContentWidth(width int) {
	s.content = width
	s.Rewind()
}

// ContentOffset converts a viewport column into an offset from the start
// of the text. The result is negative when x is left of the text.
func (s *Scroller) ContentOffset(x int) int {
	return x - s.left
}

// Left returns the column of the first text cell.
func (s *Scroller) Left() int { return s.left }

// Viewport returns the viewport width.
func (s *Scroller) Viewport() int { return s.viewport }

// Pause stops Step from moving the text.
func (s *Scroller) Pause() { s.paused = true }

// Resume undoes Pause.
func (s *Scroller) Resume() { s.paused = false }

// Paused reports whether the text is held in place.
func (s *Scroller) Paused() bool { return s.paused }
