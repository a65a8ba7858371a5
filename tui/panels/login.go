package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/trendtape/internal/login"
	"github.com/zappabad/trendtape/tui/styles"
)

// LoginField represents the currently focused login field.
type LoginField int

const (
	FieldMode LoginField = iota
	FieldAccount
	FieldPassword
	FieldRepeat
	FieldShowPassword
	FieldRemember
	FieldSubmit
)

// LoginPanel is the login and sign-up form. Every field is checked as it is
// typed; nothing is sent anywhere.
type LoginPanel struct {
	account  textinput.Model
	password textinput.Model
	repeat   textinput.Model

	modeOptions []string
	signUp      bool

	showPassword bool
	remember     bool
	message      string

	currentField LoginField

	focused bool
	width   int
	height  int
}

// NewLoginPanel creates a login panel.
func NewLoginPanel() *LoginPanel {
	account := textinput.New()
	account.Placeholder = "Account"
	account.Width = 20
	account.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "Password"
	password.Width = 20
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	repeat := textinput.New()
	repeat.Placeholder = "Repeat password"
	repeat.Width = 20
	repeat.CharLimit = 64
	repeat.EchoMode = textinput.EchoPassword

	return &LoginPanel{
		account:      account,
		password:     password,
		repeat:       repeat,
		modeOptions:  []string{"Login", "Sign up"},
		currentField: FieldAccount,
	}
}

// Init initializes the panel.
func (p *LoginPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *LoginPanel) Update(msg tea.Msg) (*LoginPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("down"))):
			p.nextField()
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("up"))):
			p.prevField()
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if p.currentField == FieldSubmit {
				return p, p.submit()
			}
			p.nextField()
			return p, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("left", "right"))):
			if p.currentField == FieldMode {
				p.SetSignUp(!p.signUp)
				return p, nil
			}

		case key.Matches(msg, key.NewBinding(key.WithKeys(" "))):
			switch p.currentField {
			case FieldShowPassword:
				p.SetShowPassword(!p.showPassword)
				return p, nil
			case FieldRemember:
				p.remember = !p.remember
				return p, nil
			}
		}
	}

	switch p.currentField {
	case FieldAccount:
		p.account, cmd = p.account.Update(msg)
	case FieldPassword:
		p.password, cmd = p.password.Update(msg)
	case FieldRepeat:
		p.repeat, cmd = p.repeat.Update(msg)
	}

	return p, cmd
}

func (p *LoginPanel) submit() tea.Cmd {
	if !p.CanSubmit() {
		p.message = "Fix the fields above"
		return nil
	}
	p.message = ""
	msg := LoginSubmitMsg{Account: p.account.Value(), Remember: p.remember}
	return func() tea.Msg { return msg }
}

// CanSubmit reports whether every visible field checks out.
func (p *LoginPanel) CanSubmit() bool {
	if !login.CheckAccount(p.account.Value()).OK() {
		return false
	}
	if !login.CheckPassword(p.password.Value()).OK() {
		return false
	}
	return !p.signUp || login.CheckRepeat(p.password.Value(), p.repeat.Value()).OK()
}

func (p *LoginPanel) nextField() {
	p.currentField++
	if p.currentField == FieldRepeat && !p.signUp {
		p.currentField++
	}
	if p.currentField > FieldSubmit {
		p.currentField = FieldMode
	}
	p.syncFocus()
}

func (p *LoginPanel) prevField() {
	p.currentField--
	if p.currentField == FieldRepeat && !p.signUp {
		p.currentField--
	}
	if p.currentField < FieldMode {
		p.currentField = FieldSubmit
	}
	p.syncFocus()
}

func (p *LoginPanel) syncFocus() {
	inputs := map[LoginField]*textinput.Model{
		FieldAccount:  &p.account,
		FieldPassword: &p.password,
		FieldRepeat:   &p.repeat,
	}
	for field, in := range inputs {
		if p.focused && field == p.currentField {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// SetSignUp switches between the login and sign-up forms.
func (p *LoginPanel) SetSignUp(signUp bool) {
	p.signUp = signUp
	if !signUp {
		p.repeat.SetValue("")
	}
}

// SetShowPassword reveals or hides the password fields.
func (p *LoginPanel) SetShowPassword(show bool) {
	p.showPassword = show
	mode := textinput.EchoPassword
	if show {
		mode = textinput.EchoNormal
	}
	p.password.EchoMode = mode
	p.repeat.EchoMode = mode
}

// SetAccount prefills the account field, as when it was remembered.
func (p *LoginPanel) SetAccount(account string) {
	p.account.SetValue(account)
	if account != "" {
		p.remember = true
	}
}

// CurrentField returns the focused field.
func (p *LoginPanel) CurrentField() LoginField {
	return p.currentField
}

// Remember reports whether the account should be remembered.
func (p *LoginPanel) Remember() bool {
	return p.remember
}

// View renders the panel.
func (p *LoginPanel) View() string {
	var content strings.Builder

	content.WriteString(p.renderField("Mode", FieldMode, p.renderMode()))
	content.WriteString("\n")

	content.WriteString(p.renderField("Account", FieldAccount, p.account.View()))
	content.WriteString("\n")
	content.WriteString(p.renderCheck(p.account.Value(), login.CheckAccount(p.account.Value())))

	content.WriteString(p.renderField("Password", FieldPassword, p.password.View()))
	content.WriteString("\n")
	content.WriteString(p.renderCheck(p.password.Value(), login.CheckPassword(p.password.Value())))

	if p.signUp {
		content.WriteString(p.renderField("Repeat", FieldRepeat, p.repeat.View()))
		content.WriteString("\n")
		content.WriteString(p.renderCheck(p.repeat.Value(), login.CheckRepeat(p.password.Value(), p.repeat.Value())))
	}

	content.WriteString(p.renderField("", FieldShowPassword, checkbox(p.showPassword)+" Show password"))
	content.WriteString("\n")
	content.WriteString(p.renderField("", FieldRemember, checkbox(p.remember)+" Remember me"))
	content.WriteString("\n\n")

	button := styles.DisabledButtonStyle
	if p.CanSubmit() {
		button = styles.ButtonStyle
		if p.currentField == FieldSubmit && p.focused {
			button = styles.FocusedButtonStyle
		}
	}
	content.WriteString(button.Render(p.modeOptions[p.modeIndex()]))
	if p.message != "" {
		content.WriteString("  " + styles.Feedback(p.message, false))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Account", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *LoginPanel) modeIndex() int {
	if p.signUp {
		return 1
	}
	return 0
}

func (p *LoginPanel) renderField(label string, field LoginField, inputView string) string {
	labelStyle := styles.LabelStyle
	if p.currentField == field && p.focused {
		labelStyle = styles.FocusedLabelStyle
	}
	return labelStyle.Render(fmt.Sprintf("%-9s", label)) + inputView
}

type check interface {
	fmt.Stringer
	OK() bool
}

// renderCheck shows a field's verdict once something has been typed.
func (p *LoginPanel) renderCheck(value string, c check) string {
	if value == "" {
		return ""
	}
	return strings.Repeat(" ", 9) + styles.Feedback(c.String(), c.OK()) + "\n"
}

func (p *LoginPanel) renderMode() string {
	var items []string
	for i, opt := range p.modeOptions {
		style := styles.MenuItemStyle
		if i == p.modeIndex() {
			style = styles.MenuSelectedStyle
		}
		items = append(items, style.Render(opt))
	}
	return strings.Join(items, " | ")
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// SetFocus sets the focus state of the panel.
func (p *LoginPanel) SetFocus(focused bool) {
	p.focused = focused
	p.syncFocus()
}

// SetSize sets the panel dimensions.
func (p *LoginPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
