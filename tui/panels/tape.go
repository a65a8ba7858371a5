package panels

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/zappabad/trendtape/internal/seed"
	"github.com/zappabad/trendtape/internal/ticker"
	"github.com/zappabad/trendtape/tui/styles"
)

// TapeHeight is the number of rows the tape occupies, border included.
const TapeHeight = 3

// TapeConfig holds the tape's behavior settings.
type TapeConfig struct {
	Width        int // 0 follows the panel width
	Speed        int
	Interval     time.Duration
	PauseOnHover bool
	Delimiter    rune
	Gap          int
}

// TapePanel is the scrolling ticker. A left click on the text picks the
// segment under the pointer as the seed; a right click opens the topics
// menu.
type TapePanel struct {
	cfg      TapeConfig
	content  ticker.Content
	width    int // measured width of content.Raw, in cells
	scroller *ticker.Scroller

	// Screen position of the panel's top-left corner.
	originX int
	originY int

	held     bool // paused from the keyboard
	hovering bool
	focused  bool
}

// NewTapePanel creates an empty tape.
func NewTapePanel(cfg TapeConfig) *TapePanel {
	if cfg.Delimiter == 0 {
		cfg.Delimiter = ticker.DefaultDelimiter
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 50 * time.Millisecond
	}
	return &TapePanel{
		cfg:      cfg,
		scroller: ticker.NewScroller(cfg.Width, 0, cfg.Gap, cfg.Speed),
	}
}

// Init starts the animation.
func (p *TapePanel) Init() tea.Cmd {
	return p.tick()
}

func (p *TapePanel) tick() tea.Cmd {
	return tea.Tick(p.cfg.Interval, func(time.Time) tea.Msg {
		return TapeTickMsg{}
	})
}

// Update handles animation ticks and mouse input.
func (p *TapePanel) Update(msg tea.Msg) (*TapePanel, tea.Cmd) {
	switch msg := msg.(type) {
	case TapeTickMsg:
		p.scroller.Step()
		return p, p.tick()

	case tea.MouseMsg:
		return p, p.handleMouse(msg)
	}
	return p, nil
}

func (p *TapePanel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	col, onText := p.textColumn(msg.X, msg.Y)

	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
		p.hovering = onText
		p.syncPause()
		return nil
	}
	if !onText || msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		s, ok := p.SegmentAtColumn(col)
		if !ok {
			return nil
		}
		return func() tea.Msg { return SeedSelectedMsg{Seed: seed.Normalize(s)} }

	case tea.MouseButtonRight:
		segments := p.content.Segments
		return func() tea.Msg { return TopicsMenuMsg{Segments: segments} }
	}
	return nil
}

// textColumn maps a screen position to a column of the text row.
func (p *TapePanel) textColumn(x, y int) (int, bool) {
	col := x - p.originX - 1
	if y != p.originY+1 || col < 0 || col >= p.scroller.Viewport() {
		return 0, false
	}
	return col, true
}

// SegmentAtColumn returns the segment shown at viewport column col.
// Columns outside the drawn text select nothing.
func (p *TapePanel) SegmentAtColumn(col int) (string, bool) {
	off := p.scroller.ContentOffset(col)
	if off < 0 || off >= p.width {
		return "", false
	}
	return p.content.SegmentAt(float64(off))
}

func (p *TapePanel) syncPause() {
	if p.held || (p.cfg.PauseOnHover && p.hovering) {
		p.scroller.Pause()
		return
	}
	p.scroller.Resume()
}

// TogglePause holds or releases the tape.
func (p *TapePanel) TogglePause() {
	p.held = !p.held
	p.syncPause()
}

// Paused reports whether the tape is standing still.
func (p *TapePanel) Paused() bool {
	return p.scroller.Paused()
}

// SetContent replaces the tape text. The scroll restarts from the right.
func (p *TapePanel) SetContent(raw string) {
	p.content = ticker.Load(raw, p.cfg.Delimiter)
	p.width = ticker.Measure(raw)
	p.scroller.SetContentWidth(p.width)
}

// Content returns the current split tape text.
func (p *TapePanel) Content() ticker.Content {
	return p.content
}

// Scroller exposes the scroll position.
func (p *TapePanel) Scroller() *ticker.Scroller {
	return p.scroller
}

// SetOrigin sets where the panel is drawn on screen.
func (p *TapePanel) SetOrigin(x, y int) {
	p.originX = x
	p.originY = y
}

// SetSize sets the panel width. A configured tape width narrower than the
// panel wins.
func (p *TapePanel) SetSize(width int) {
	viewport := width - 2
	if p.cfg.Width > 0 && p.cfg.Width < viewport {
		viewport = p.cfg.Width
	}
	if viewport < 0 {
		viewport = 0
	}
	first := p.scroller.Viewport() == 0
	p.scroller.Resize(viewport)
	if first {
		p.scroller.Rewind()
	}
}

// SetFocus sets the focus state of the panel.
func (p *TapePanel) SetFocus(focused bool) {
	p.focused = focused
}

// View renders the panel.
func (p *TapePanel) View() string {
	style := styles.TapeTextStyle
	if p.Paused() {
		style = styles.TapePausedStyle
	}
	viewport := p.scroller.Viewport()
	line := style.Width(viewport).Render(Window(p.content.Raw, p.scroller.Left(), viewport))

	frame := styles.TapeFrameStyle
	if p.focused {
		frame = styles.FocusedTapeFrameStyle
	}
	return frame.Render(line)
}

// Window returns the part of text visible in a viewport of width cells when
// the text starts at column left. Wide characters cut by an edge become
// spaces so the row keeps its width.
func Window(text string, left, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	col := left
	if col > 0 {
		if col >= width {
			return strings.Repeat(" ", width)
		}
		b.WriteString(strings.Repeat(" ", col))
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		end := col + w
		switch {
		case end <= 0:
		case col < 0:
			b.WriteString(strings.Repeat(" ", end))
		case end > width:
			b.WriteString(strings.Repeat(" ", width-col))
			return b.String()
		default:
			b.WriteRune(r)
		}
		col = end
		if col >= width {
			return b.String()
		}
	}
	if col < 0 {
		col = 0
	}
	b.WriteString(strings.Repeat(" ", width-col))
	return b.String()
}
