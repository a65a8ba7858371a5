package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zappabad/trendtape/internal/features"
	"github.com/zappabad/trendtape/tui/styles"
)

const (
	featureStartDelay = 3 * time.Second
	featureStep       = 1500 * time.Millisecond

	// featureListTop is the offset of the first title row from the panel's
	// top edge: one border row and the title.
	featureListTop = 2
)

// FeaturesPanel runs the feature tour. Titles appear one at a time, then
// the first feature is shown. A click on a title, the arrow keys or a
// number key show another one.
type FeaturesPanel struct {
	carousel *features.Carousel

	originX int
	originY int

	focused bool
	width   int
	height  int
}

// NewFeaturesPanel creates a tour over fs.
func NewFeaturesPanel(fs []features.Feature) *FeaturesPanel {
	return &FeaturesPanel{carousel: features.NewCarousel(fs)}
}

// Init schedules the first reveal.
func (p *FeaturesPanel) Init() tea.Cmd {
	if p.carousel.Done() {
		return nil
	}
	return featureTick(featureStartDelay)
}

func featureTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FeatureTickMsg{}
	})
}

// Update handles reveal ticks, clicks on titles and keys while focused.
func (p *FeaturesPanel) Update(msg tea.Msg) (*FeaturesPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case FeatureTickMsg:
		if p.carousel.Step() {
			return p, featureTick(featureStep)
		}
		return p, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return p, nil
		}
		if i, ok := p.RowAt(msg.X, msg.Y); ok {
			p.carousel.Show(i)
		}
		return p, nil

	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			p.carousel.Prev()
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			p.carousel.Next()
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				p.carousel.Show(int(s[0] - '1'))
			}
		}
	}
	return p, nil
}

// RowAt returns the index of the title drawn at screen position (x, y).
func (p *FeaturesPanel) RowAt(x, y int) (int, bool) {
	if x < p.originX || x >= p.originX+p.width {
		return 0, false
	}
	i := y - p.originY - featureListTop
	if i < 0 || i >= p.carousel.Revealed() {
		return 0, false
	}
	return i, true
}

// Carousel exposes the tour state.
func (p *FeaturesPanel) Carousel() *features.Carousel {
	return p.carousel
}

// View renders the panel.
func (p *FeaturesPanel) View() string {
	innerWidth := max(p.width-4, 1)
	_, shown, _ := p.carousel.Shown()

	var lines []string
	for i := 0; i < p.carousel.Revealed(); i++ {
		mark, style := "○ ", styles.FeatureItemStyle
		if i == shown {
			mark, style = "● ", styles.FeatureSelectedStyle
		}
		title := runewidth.Truncate(mark+p.carousel.Feature(i).Title, innerWidth, "…")
		lines = append(lines, style.Render(title))
	}

	if f, _, ok := p.carousel.Shown(); ok {
		lines = append(lines, "")
		lines = append(lines, styles.FeatureSummaryStyle.Width(innerWidth).Render(f.Summary))
		lines = append(lines, styles.FeatureTextStyle.Width(innerWidth).Render(f.Description))
	}

	// Lines wrapped by Width carry newlines; flatten before clipping.
	content := strings.Split(strings.Join(lines, "\n"), "\n")
	if limit := p.height - 3; limit >= 0 && len(content) > limit {
		content = content[:limit]
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Features", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(content, "\n"))

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *FeaturesPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *FeaturesPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetOrigin records where the panel's top-left corner is drawn.
func (p *FeaturesPanel) SetOrigin(x, y int) {
	p.originX = x
	p.originY = y
}
