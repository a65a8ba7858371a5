package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/trendtape/internal/popup"
	"github.com/zappabad/trendtape/internal/seed"
	"github.com/zappabad/trendtape/tui/styles"
)

// menuHeader is the number of rows above the first entry: border and title.
const menuHeader = 2

// PopupPanel is the topics menu drawn over the screen's center.
type PopupPanel struct {
	menu *popup.Menu
	open bool

	// Screen area the menu is centered in.
	width  int
	height int
}

// NewPopupPanel creates a closed popup.
func NewPopupPanel() *PopupPanel {
	return &PopupPanel{}
}

// Open shows the menu over segments.
func (p *PopupPanel) Open(segments []string) {
	p.menu = popup.NewMenu(segments)
	p.open = true
}

// Close hides the menu.
func (p *PopupPanel) Close() {
	p.open = false
	p.menu = nil
}

// IsOpen reports whether the menu is showing.
func (p *PopupPanel) IsOpen() bool {
	return p.open
}

// Menu returns the open menu, or nil.
func (p *PopupPanel) Menu() *popup.Menu {
	return p.menu
}

// Update handles keys and clicks while the menu is open.
func (p *PopupPanel) Update(msg tea.Msg) (*PopupPanel, tea.Cmd) {
	if !p.open {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k", "shift+tab"))):
			p.menu.Up()
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
			p.menu.Down()
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			return p, p.choose()
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "q"))):
			return p, p.cancel()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return p, nil
		}
		row, inside := p.RowAt(msg.X, msg.Y)
		if !inside {
			return p, p.cancel()
		}
		if msg.Button == tea.MouseButtonLeft && p.menu.Select(row) {
			return p, p.choose()
		}
	}
	return p, nil
}

func (p *PopupPanel) choose() tea.Cmd {
	entry, ok := p.menu.Selected()
	if !ok {
		return p.cancel()
	}
	p.Close()
	s := seed.Normalize(entry.Segment)
	return func() tea.Msg { return SeedSelectedMsg{Seed: s} }
}

func (p *PopupPanel) cancel() tea.Cmd {
	p.Close()
	return func() tea.Msg { return PopupClosedMsg{} }
}

// box renders the menu without placement.
func (p *PopupPanel) box() string {
	rows := []string{styles.MenuTitleStyle.Render(popup.Title)}
	for i := 0; i < p.menu.Rows(); i++ {
		text := popup.CancelLabel
		if i < len(p.menu.Entries()) {
			text = p.menu.Entries()[i].Text()
		}
		style := styles.MenuItemStyle
		if i == p.menu.Cursor() {
			style = styles.MenuSelectedStyle
		}
		rows = append(rows, style.Render(text))
	}

	// Pad rows to a common width so the background is solid.
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r))
	}
	for i, r := range rows {
		if pad := width - lipgloss.Width(r); pad > 0 {
			rows[i] = r + styles.MenuItemStyle.UnsetPadding().Render(strings.Repeat(" ", pad))
		}
	}
	return styles.MenuStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// origin is the top-left corner of the centered box.
func (p *PopupPanel) origin(box string) (int, int) {
	x := max((p.width-lipgloss.Width(box))/2, 0)
	y := max((p.height-lipgloss.Height(box))/2, 0)
	return x, y
}

// RowAt maps a screen position to a menu row. inside is false when the
// position is off the box; row is -1 on the border or title.
func (p *PopupPanel) RowAt(x, y int) (row int, inside bool) {
	if !p.open {
		return -1, false
	}
	box := p.box()
	ox, oy := p.origin(box)
	if x < ox || x >= ox+lipgloss.Width(box) || y < oy || y >= oy+lipgloss.Height(box) {
		return -1, false
	}
	row = y - oy - menuHeader
	if row < 0 || row >= p.menu.Rows() {
		return -1, true
	}
	return row, true
}

// View renders the menu centered in the screen area.
func (p *PopupPanel) View() string {
	if !p.open {
		return ""
	}
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, p.box())
}

// SetSize sets the screen area.
func (p *PopupPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
