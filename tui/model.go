package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/zappabad/trendtape/internal/cookie"
	"github.com/zappabad/trendtape/internal/features"
	"github.com/zappabad/trendtape/internal/feed"
	feedservice "github.com/zappabad/trendtape/internal/feed/service"
	"github.com/zappabad/trendtape/internal/ticker"
	"github.com/zappabad/trendtape/tui/panels"
	"github.com/zappabad/trendtape/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusTape     PanelFocus = 0
	FocusSeed     PanelFocus = 1
	FocusLogin    PanelFocus = 2
	FocusTopics   PanelFocus = 3
	FocusFeatures PanelFocus = 4

	panelCount = 5
)

// Fixed panel heights, borders included.
const (
	seedPanelHeight  = 8
	loginPanelHeight = 15
)

// jarTimeout bounds each cookie jar call.
const jarTimeout = 2 * time.Second

// CookieJar persists the seed and the remembered account.
type CookieJar interface {
	GetAttr(ctx context.Context, name, key string) (string, error)
	SetAttr(ctx context.Context, name, key, value string) error
	Delete(ctx context.Context, name string) error
}

// Options configures a Model.
type Options struct {
	Tape          panels.TapeConfig
	SeedMaxLength int

	Feed *feedservice.FeedService
	// Jar may be nil, in which case nothing is remembered.
	Jar    CookieJar
	Logger *zap.Logger
}

// Model is the main TUI application model.
type Model struct {
	feedService *feedservice.FeedService
	jar         CookieJar
	log         *zap.Logger
	delimiter   rune

	// Panels
	tapePanel     *panels.TapePanel
	seedPanel     *panels.SeedPanel
	loginPanel    *panels.LoginPanel
	topicsPanel   *panels.TopicsPanel
	featuresPanel *panels.FeaturesPanel
	popupPanel    *panels.PopupPanel

	// Focus management
	focusedPanel PanelFocus

	// Window dimensions
	width  int
	height int

	// Status
	statusMsg string
	ready     bool
}

// NewModel creates a new TUI model.
func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Tape.Delimiter == 0 {
		opts.Tape.Delimiter = ticker.DefaultDelimiter
	}

	m := &Model{
		feedService:   opts.Feed,
		jar:           opts.Jar,
		log:           log,
		delimiter:     opts.Tape.Delimiter,
		tapePanel:     panels.NewTapePanel(opts.Tape),
		seedPanel:     panels.NewSeedPanel(opts.SeedMaxLength),
		loginPanel:    panels.NewLoginPanel(),
		topicsPanel:   panels.NewTopicsPanel(),
		featuresPanel: panels.NewFeaturesPanel(features.Defaults()),
		popupPanel:    panels.NewPopupPanel(),
		focusedPanel:  FocusTape,
	}
	m.refreshTopics()
	m.applyFocus()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.tapePanel.Init(),
		m.seedPanel.Init(),
		m.loginPanel.Init(),
		m.topicsPanel.Init(),
		m.featuresPanel.Init(),
		m.loadSaved(),
		m.listenFeedEvents(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The open menu takes all keyboard and mouse input.
	if m.popupPanel.IsOpen() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.popupPanel, cmd = m.popupPanel.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.handleKey(msg, &cmds) {
			return m, tea.Batch(cmds...)
		}

	case tea.MouseMsg:
		var tapeCmd, featuresCmd tea.Cmd
		m.tapePanel, tapeCmd = m.tapePanel.Update(msg)
		m.featuresPanel, featuresCmd = m.featuresPanel.Update(msg)
		return m, tea.Batch(tapeCmd, featuresCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updatePanelSizes()
		m.ready = true
		return m, nil

	case panels.TapeTickMsg:
		var cmd tea.Cmd
		m.tapePanel, cmd = m.tapePanel.Update(msg)
		return m, cmd

	case panels.FeatureTickMsg:
		var cmd tea.Cmd
		m.featuresPanel, cmd = m.featuresPanel.Update(msg)
		return m, cmd

	case feedUpdateMsg:
		m.refreshTopics()
		return m, m.listenFeedEvents()

	case panels.SeedSelectedMsg:
		m.seedPanel.SetValue(msg.Seed)
		m.setFocus(FocusSeed)
		m.statusMsg = "Picked: " + msg.Seed
		m.log.Debug("topic picked", zap.String("seed", msg.Seed))
		return m, m.saveAttr(cookie.StateCookie, cookie.AttrSelection, msg.Seed, "")

	case panels.TopicsMenuMsg:
		m.popupPanel.Open(msg.Segments)
		return m, nil

	case panels.PopupClosedMsg:
		return m, nil

	case panels.SeedSubmitMsg:
		m.log.Info("seed submitted", zap.String("seed", msg.Seed))
		return m, m.saveAttr(cookie.StateCookie, cookie.AttrSeed, msg.Seed, "Seed saved: "+msg.Seed)

	case panels.LoginSubmitMsg:
		m.log.Info("login", zap.String("account", msg.Account), zap.Bool("remember", msg.Remember))
		if msg.Remember {
			return m, m.saveAttr(cookie.AccountCookie, cookie.AttrAccount, msg.Account, "Welcome, "+msg.Account)
		}
		return m, m.forgetAccount("Welcome, " + msg.Account)

	case savedStateMsg:
		if msg.seed != "" {
			m.seedPanel.SetValue(msg.seed)
		}
		if msg.account != "" {
			m.loginPanel.SetAccount(msg.account)
		}
		return m, nil

	case statusMsg:
		m.statusMsg = string(msg)
		return m, nil
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

// handleKey handles global keys. It reports whether the key was consumed.
func (m *Model) handleKey(msg tea.KeyMsg, cmds *[]tea.Cmd) bool {
	typing := m.focusedPanel == FocusSeed || m.focusedPanel == FocusLogin

	switch msg.String() {
	case "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
		return true
	case "ctrl+r":
		m.seedPanel.Reset()
		m.statusMsg = "Seed cleared"
		return true
	case "q":
		if typing {
			return false
		}
		*cmds = append(*cmds, tea.Quit)
		return true
	case "p":
		if typing {
			return false
		}
		m.tapePanel.TogglePause()
		return true

	// Cycle focus with tab
	case "tab":
		m.setFocus((m.focusedPanel + 1) % panelCount)
		return true

	// Reverse cycle focus with shift+tab
	case "shift+tab":
		m.setFocus((m.focusedPanel + panelCount - 1) % panelCount)
		return true

	// Direct panel focus with F1-F5
	case "f1":
		m.setFocus(FocusTape)
		return true
	case "f2":
		m.setFocus(FocusSeed)
		return true
	case "f3":
		m.setFocus(FocusLogin)
		return true
	case "f4":
		m.setFocus(FocusTopics)
		return true
	case "f5":
		m.setFocus(FocusFeatures)
		return true

	case "enter", "m":
		if m.focusedPanel == FocusTape {
			m.popupPanel.Open(m.tapePanel.Content().Segments)
			return true
		}
	}
	return false
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusSeed:
		m.seedPanel, cmd = m.seedPanel.Update(msg)
	case FocusLogin:
		m.loginPanel, cmd = m.loginPanel.Update(msg)
	case FocusTopics:
		m.topicsPanel, cmd = m.topicsPanel.Update(msg)
	case FocusFeatures:
		m.featuresPanel, cmd = m.featuresPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.popupPanel.IsOpen() {
		return m.popupPanel.View()
	}

	// Layout:
	// ┌───────────────────────────────────────┐
	// │ tape                                  │
	// ├───────────────────┬───────────────────┤
	// │ Seed              │ Account           │
	// ├───────────────────┤                   │
	// │ Trending          ├───────────────────┤
	// │                   │ Features          │
	// └───────────────────┴───────────────────┘
	leftColumn := lipgloss.JoinVertical(lipgloss.Left,
		m.seedPanel.View(),
		m.topicsPanel.View(),
	)
	rightColumn := lipgloss.JoinVertical(lipgloss.Left,
		m.loginPanel.View(),
		m.featuresPanel.View(),
	)
	middle := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightColumn)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tapePanel.View(),
		middle,
		m.renderStatusBar(),
	)
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("F1-F5") + styles.StatusBarDescStyle.Render(" panels"),
		styles.StatusBarKeyStyle.Render("click") + styles.StatusBarDescStyle.Render(" pick"),
		styles.StatusBarKeyStyle.Render("right-click") + styles.StatusBarDescStyle.Render(" topics"),
		styles.StatusBarKeyStyle.Render("p") + styles.StatusBarDescStyle.Render(" pause"),
		styles.StatusBarKeyStyle.Render("ctrl+r") + styles.StatusBarDescStyle.Render(" clear seed"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}

	helpStr := help[0]
	for _, h := range help[1:] {
		helpStr += " │ " + h
	}

	status := ""
	if m.statusMsg != "" {
		status = " │ " + m.statusMsg
	}

	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}

func (m *Model) setFocus(panel PanelFocus) {
	m.focusedPanel = panel
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.tapePanel.SetFocus(m.focusedPanel == FocusTape)
	m.seedPanel.SetFocus(m.focusedPanel == FocusSeed)
	m.loginPanel.SetFocus(m.focusedPanel == FocusLogin)
	m.topicsPanel.SetFocus(m.focusedPanel == FocusTopics)
	m.featuresPanel.SetFocus(m.focusedPanel == FocusFeatures)
}

// FocusedPanel returns the focused panel.
func (m *Model) FocusedPanel() PanelFocus {
	return m.focusedPanel
}

// StatusMessage returns the text shown in the status bar.
func (m *Model) StatusMessage() string {
	return m.statusMsg
}

func (m *Model) updatePanelSizes() {
	m.tapePanel.SetOrigin(0, 0)
	m.tapePanel.SetSize(m.width)

	middleHeight := max(m.height-panels.TapeHeight-1, 0)
	leftWidth := m.width / 2

	m.seedPanel.SetSize(leftWidth, seedPanelHeight)
	m.topicsPanel.SetSize(leftWidth, max(middleHeight-seedPanelHeight, 0))
	loginHeight := min(loginPanelHeight, middleHeight)
	m.loginPanel.SetSize(m.width-leftWidth, loginHeight)
	m.featuresPanel.SetOrigin(leftWidth, panels.TapeHeight+loginHeight)
	m.featuresPanel.SetSize(m.width-leftWidth, middleHeight-loginHeight)
	m.popupPanel.SetSize(m.width, m.height)
}

// refreshTopics rebuilds the tape and the topics list from the feed.
func (m *Model) refreshTopics() {
	if m.feedService == nil {
		return
	}
	topics := m.feedService.Topics()
	m.tapePanel.SetContent(feed.Compose(topics, m.delimiter))
	m.topicsPanel.SetTopics(topics)
}

// feedUpdateMsg is sent when the feed changes.
type feedUpdateMsg struct{}

func (m *Model) listenFeedEvents() tea.Cmd {
	if m.feedService == nil {
		return nil
	}
	events := m.feedService.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return feedUpdateMsg{}
	}
}

// statusMsg replaces the status bar text.
type statusMsg string

// savedStateMsg carries what the jar remembered from the last session.
type savedStateMsg struct {
	seed    string
	account string
}

func (m *Model) loadSaved() tea.Cmd {
	if m.jar == nil {
		return nil
	}
	jar, log := m.jar, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), jarTimeout)
		defer cancel()

		var saved savedStateMsg
		var err error
		if saved.seed, err = jar.GetAttr(ctx, cookie.StateCookie, cookie.AttrSeed); err != nil && !errors.Is(err, cookie.ErrNotFound) {
			log.Warn("load saved seed", zap.Error(err))
		}
		if saved.account, err = jar.GetAttr(ctx, cookie.AccountCookie, cookie.AttrAccount); err != nil && !errors.Is(err, cookie.ErrNotFound) {
			log.Warn("load saved account", zap.Error(err))
		}
		return saved
	}
}

// saveAttr stores one cookie attribute and reports done as the status.
// An empty done leaves the status alone.
func (m *Model) saveAttr(name, key, value, done string) tea.Cmd {
	if m.jar == nil {
		return statusCmd(done)
	}
	jar, log := m.jar, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), jarTimeout)
		defer cancel()
		if err := jar.SetAttr(ctx, name, key, value); err != nil {
			log.Error("save cookie", zap.String("cookie", name), zap.String("attr", key), zap.Error(err))
			return statusMsg("Could not save " + key)
		}
		if done == "" {
			return nil
		}
		return statusMsg(done)
	}
}

func (m *Model) forgetAccount(done string) tea.Cmd {
	if m.jar == nil {
		return statusCmd(done)
	}
	jar, log := m.jar, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), jarTimeout)
		defer cancel()
		if err := jar.Delete(ctx, cookie.AccountCookie); err != nil && !errors.Is(err, cookie.ErrNotFound) {
			log.Error("forget account", zap.Error(err))
		}
		return statusMsg(done)
	}
}

func statusCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return statusMsg(s) }
}
