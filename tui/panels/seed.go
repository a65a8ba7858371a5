package panels

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/trendtape/internal/seed"
	"github.com/zappabad/trendtape/tui/styles"
)

// SeedPanel holds the seed field. Topics picked elsewhere land here and
// enter submits the value once it validates.
type SeedPanel struct {
	input     textinput.Model
	maxLength int
	feedback  string
	ok        bool

	focused bool
	width   int
	height  int
}

// NewSeedPanel creates a seed panel accepting up to maxLength characters.
func NewSeedPanel(maxLength int) *SeedPanel {
	if maxLength <= 0 {
		maxLength = seed.DefaultMaxLength
	}
	input := textinput.New()
	input.Placeholder = "Pick a topic from the tape..."
	input.Width = maxLength
	input.PlaceholderStyle = styles.PlaceholderStyle

	return &SeedPanel{
		input:     input,
		maxLength: maxLength,
	}
}

// Init initializes the panel.
func (p *SeedPanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the panel.
func (p *SeedPanel) Update(msg tea.Msg) (*SeedPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			return p, p.submit()
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			p.Reset()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.validate()
	return p, cmd
}

func (p *SeedPanel) submit() tea.Cmd {
	if !p.validate() {
		return nil
	}
	s := p.Value()
	p.feedback = "Seed set"
	return func() tea.Msg { return SeedSubmitMsg{Seed: s} }
}

// validate refreshes the feedback line and reports whether the value is
// acceptable.
func (p *SeedPanel) validate() bool {
	err := seed.Validate(p.Value(), p.maxLength)
	switch {
	case err == nil:
		p.feedback, p.ok = "Ok", true
	case errors.Is(err, seed.ErrEmpty):
		p.feedback, p.ok = "", false
	default:
		p.feedback, p.ok = err.Error(), false
	}
	return err == nil
}

// Value returns the trimmed field contents.
func (p *SeedPanel) Value() string {
	return strings.TrimSpace(p.input.Value())
}

// SetValue replaces the field contents.
func (p *SeedPanel) SetValue(s string) {
	p.input.SetValue(s)
	p.input.CursorEnd()
	p.validate()
}

// Reset clears the field and disables submit until a new seed is entered.
func (p *SeedPanel) Reset() {
	p.input.Reset()
	p.feedback, p.ok = "", false
}

// CharsLeft returns how many characters fit before the limit. It goes
// negative once the field is over.
func (p *SeedPanel) CharsLeft() int {
	return p.maxLength - utf8.RuneCountInString(p.input.Value())
}

// Valid reports whether the current value would be accepted.
func (p *SeedPanel) Valid() bool {
	return p.ok
}

// Feedback returns the validation message under the field.
func (p *SeedPanel) Feedback() string {
	return p.feedback
}

// View renders the panel.
func (p *SeedPanel) View() string {
	labelStyle := styles.LabelStyle
	if p.focused {
		labelStyle = styles.FocusedLabelStyle
	}

	var content strings.Builder
	content.WriteString(labelStyle.Render("Seed "))
	content.WriteString(p.input.View())
	content.WriteString("\n")
	left := p.CharsLeft()
	counter := styles.CounterStyle.Render(strconv.Itoa(left) + " characters left")
	if left < 0 {
		counter = styles.ErrorStyle.Render(strconv.Itoa(left) + " characters left")
	}
	content.WriteString(counter)
	if p.feedback != "" {
		content.WriteString("  " + styles.Feedback(p.feedback, p.ok))
	}
	content.WriteString("\n\n")

	button := styles.DisabledButtonStyle
	if p.ok {
		button = styles.ButtonStyle
		if p.focused {
			button = styles.FocusedButtonStyle
		}
	}
	content.WriteString(button.Render("Generate"))

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Seed", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *SeedPanel) SetFocus(focused bool) {
	p.focused = focused
	if focused {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
}

// SetSize sets the panel dimensions.
func (p *SeedPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
