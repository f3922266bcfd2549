package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/streamvault/internal/billing"
	"github.com/mmcdole/streamvault/internal/scheduler"
	"github.com/mmcdole/streamvault/internal/session"
	"github.com/mmcdole/streamvault/internal/tui/components"
	"github.com/mmcdole/streamvault/internal/tui/styles"
)

// ApplicationState represents what owns the keyboard when no session modal
// is open
type ApplicationState int

const (
	StateSignIn ApplicationState = iota
	StateBrowsing
	StateSearching
	StateJumping
)

const (
	statusTimeout   = 3 * time.Second
	provisionRedraw = 200 * time.Millisecond
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Storefront and the scheduler its sessions run on
	Front    *session.Storefront
	Timers   *scheduler.Deferred
	External bool // an external player is configured

	// UI Components
	Keys      KeyMap
	Help      help.Model
	SignIn    components.SignInModal
	SearchBar components.SearchBar
	Jump      components.JumpPalette
	Settings  components.SettingsPanel

	// Browse cursor. Row indexes browseRows; Col indexes within the row.
	// ResultCursor indexes the flat results grid while a query is active.
	Row          int
	Col          int
	ResultCursor int

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool

	arm    func(scheduler.Pending) tea.Cmd
	logger *slog.Logger
}

// NewModel creates a new application model, starting at the sign-in form
func NewModel(front *session.Storefront, timers *scheduler.Deferred, external bool, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		State:     StateSignIn,
		Front:     front,
		Timers:    timers,
		External:  external,
		Keys:      DefaultKeyMap(),
		Help:      h,
		SignIn:    components.NewSignInModal(),
		SearchBar: components.NewSearchBar(),
		Jump:      components.NewJumpPalette(),
		Settings:  components.NewSettingsPanel(),
		arm:       armTick,
		logger:    logger,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages. Whatever the message, tasks the session
// scheduled while handling it are armed before returning.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, tea.Batch(cmd, timerCmds(m.Timers, m.arm))
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case timerFiredMsg:
		m.Timers.Fire(msg.ID)
		m.clampCursors()
		return m, nil

	case TickMsg:
		if m.provisioning() {
			return m, TickCmd(provisionRedraw)
		}
		return m, nil

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case ErrMsg:
		m.logger.Error("ui error", "error", msg)
		return m, m.setStatus(msg.Error(), true)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	switch m.State {
	case StateSignIn:
		m.SignIn, cmd, _ = m.SignIn.Update(msg)
	case StateSearching:
		m.SearchBar, cmd, _ = m.SearchBar.Update(msg)
	case StateJumping:
		m.Jump, cmd, _ = m.Jump.Update(msg)
	}
	return m, cmd
}

// session returns the signed-in session, nil when signed out
func (m Model) session() *session.Session {
	s, _ := m.Front.Session()
	return s
}

func (m Model) provisioning() bool {
	s := m.session()
	return s != nil && s.Upgrade() != nil && s.Upgrade().State() == billing.Provisioning
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(statusTimeout)
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	m.SignIn.SetSize(m.Width, m.Height)
	m.Jump.SetSize(m.Width, m.Height)
	m.Settings.SetSize(m.Width, m.Height)
	m.SearchBar.SetWidth(m.Width / 3)
	m.Help.Width = m.Width
}
