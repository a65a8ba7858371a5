package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zappabad/trendtape/internal/feed"
	"github.com/zappabad/trendtape/internal/seed"
	"github.com/zappabad/trendtape/tui/styles"
)

// TopicsPanel lists the feed's topics, newest last. Enter picks the
// highlighted topic as the seed.
type TopicsPanel struct {
	topics        []feed.Topic
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewTopicsPanel creates an empty topics panel.
func NewTopicsPanel() *TopicsPanel {
	return &TopicsPanel{}
}

// Init initializes the panel.
func (p *TopicsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *TopicsPanel) Update(msg tea.Msg) (*TopicsPanel, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}
	switch {
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("up", "k"))):
		if p.selectedIndex > 0 {
			p.selectedIndex--
			if p.selectedIndex < p.scrollOffset {
				p.scrollOffset = p.selectedIndex
			}
		}
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("down", "j"))):
		if p.selectedIndex < len(p.topics)-1 {
			p.selectedIndex++
			visibleItems := p.visibleItems()
			if p.selectedIndex >= p.scrollOffset+visibleItems {
				p.scrollOffset = p.selectedIndex - visibleItems + 1
			}
		}
	case key.Matches(msgKey, key.NewBinding(key.WithKeys("enter"))):
		t := p.SelectedTopic()
		if t == nil {
			return p, nil
		}
		s := seed.Normalize(t.Text)
		return p, func() tea.Msg { return SeedSelectedMsg{Seed: s} }
	}
	return p, nil
}

func (p *TopicsPanel) visibleItems() int {
	if n := p.height - 4; n > 0 {
		return n
	}
	return 1
}

// View renders the panel.
func (p *TopicsPanel) View() string {
	var content strings.Builder

	if len(p.topics) == 0 {
		content.WriteString(styles.PlaceholderStyle.Render("No topics yet"))
	} else {
		visibleItems := p.visibleItems()
		start := p.scrollOffset
		end := min(start+visibleItems, len(p.topics))

		for i := start; i < end; i++ {
			item := p.topics[i]
			timeStr := time.Unix(0, item.Time).Format("15:04:05")

			text := item.Text
			if limit := p.width - 15; limit > 3 {
				text = runewidth.Truncate(text, limit, "...")
			}

			line := fmt.Sprintf("%s %s", styles.TimeStyle.Render(timeStr), styles.RowStyle.Render(text))
			if i == p.selectedIndex && p.focused {
				line = styles.SelectedRowStyle.Render(line)
			}

			content.WriteString(line)
			if i < end-1 {
				content.WriteString("\n")
			}
		}

		if len(p.topics) > visibleItems {
			content.WriteString("\n")
			content.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).
				Render(fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.topics))))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Trending", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *TopicsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *TopicsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetTopics replaces the listed topics.
func (p *TopicsPanel) SetTopics(topics []feed.Topic) {
	p.topics = topics
	if p.selectedIndex >= len(p.topics) {
		p.selectedIndex = max(len(p.topics)-1, 0)
	}
	if p.scrollOffset > p.selectedIndex {
		p.scrollOffset = p.selectedIndex
	}
}

// SelectedTopic returns the highlighted topic.
func (p *TopicsPanel) SelectedTopic() *feed.Topic {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.topics) {
		return &p.topics[p.selectedIndex]
	}
	return nil
}
