package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#660099") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	AccentColor    = lipgloss.Color("#F59E0B") // Amber

	// Feedback colors
	OkColor    = lipgloss.Color("#3B82F6") // Blue
	ErrorColor = lipgloss.Color("#EF4444") // Red

	// Tape colors
	TapeBackgroundColor = lipgloss.Color("#000000")
	TapeTextColor       = lipgloss.Color("#FFFF00")

	// Background colors
	BackgroundColor      = lipgloss.Color("#1F2937")
	PanelBackgroundColor = lipgloss.Color("#111827")
	MenuBackgroundColor  = lipgloss.Color("#E0E0E0")
	BorderColor          = lipgloss.Color("#374151")
	FocusBorderColor     = lipgloss.Color("#7C3AED")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
	MenuTextColor      = lipgloss.Color("#444444")
)

// Panel styles
var (
	// Base panel style
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Focused panel style
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	// Panel title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))
)

// Feature tour styles
var (
	FeatureItemStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)

	FeatureSelectedStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	FeatureSummaryStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	FeatureTextStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Tape styles. The tape has a border but no padding so that the text row
// starts one column in from the panel's left edge.
var (
	TapeFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor)

	FocusedTapeFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor)

	TapeTextStyle = lipgloss.NewStyle().
			Background(TapeBackgroundColor).
			Foreground(TapeTextColor)

	TapePausedStyle = lipgloss.NewStyle().
			Background(TapeBackgroundColor).
			Foreground(AccentColor)
)

// Popup menu styles
var (
	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor).
			Background(MenuBackgroundColor)

	MenuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(MenuTextColor).
			Background(MenuBackgroundColor).
			Align(lipgloss.Center)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(MenuTextColor).
			Background(MenuBackgroundColor).
			Padding(0, 1)

	MenuSelectedStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Padding(0, 1)
)

// Input styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(FocusBorderColor).
				Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(TextMutedColor)

	CounterStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor).
			Italic(true)

	OkStyle = lipgloss.NewStyle().
		Foreground(OkColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(BorderColor).
			Padding(0, 1)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(TextMutedColor).
				Background(PanelBackgroundColor).
				Padding(0, 1)
)

// Timestamp style
var TimeStyle = lipgloss.NewStyle().
	Foreground(TextMutedColor)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// Helper function to render a title bar for a panel
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

// Feedback renders a validation message in the ok or error color.
func Feedback(msg string, ok bool) string {
	if ok {
		return OkStyle.Render(msg)
	}
	return ErrorStyle.Render(msg)
}
