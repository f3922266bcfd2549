package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/session"
	"github.com/mmcdole/streamvault/internal/tui/components"
)

// handleKeyMsg routes a key to whatever owns the keyboard: the sign-in
// form, the active session modal, or the catalog screen
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	s := m.session()
	if m.State == StateSignIn || s == nil {
		return m.handleSignInKey(msg)
	}

	switch s.Modal().(type) {
	case domain.AdModal:
		return m.handleAdKey(s, msg)
	case domain.PlayerModal:
		return m.handlePlayerKey(s, msg)
	case domain.UpgradeModal:
		return m.handleUpgradeKey(s, msg)
	case domain.SettingsModal:
		return m.handleSettingsKey(s, msg)
	}

	switch m.State {
	case StateSearching:
		return m.handleSearchKey(s, msg)
	case StateJumping:
		return m.handleJumpKey(s, msg)
	default:
		return m.handleBrowseKey(s, msg)
	}
}

func (m Model) handleSignInKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.SignIn, cmd, submitted = m.SignIn.Update(msg)
	if !submitted {
		return m, cmd
	}

	_, err := m.Front.SignIn(session.Credentials{
		Email:    m.SignIn.Email(),
		Password: m.SignIn.Password(),
		SignUp:   m.SignIn.SignUp(),
	})
	if err != nil {
		// Nothing visible changes on rejected input
		m.logger.Debug("sign-in rejected", "error", err)
		return m, cmd
	}

	m.State = StateBrowsing
	m.Row, m.Col, m.ResultCursor = 0, 0, 0
	m.SearchBar.Clear()
	return m, cmd
}

func (m Model) handleAdKey(s *session.Session, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Skip):
		if !s.SkipAd() {
			if ad := s.Ad(); ad != nil && ad.SkipIn() > 0 {
				return m, m.setStatus(fmt.Sprintf("You can skip in %ds", ad.SkipIn()), false)
			}
		}
	case key.Matches(msg, m.Keys.Upgrade):
		s.RequestUpgrade()
	case key.Matches(msg, m.Keys.Escape):
		s.CloseModal()
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePlayerKey(s *session.Session, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Pause):
		if p := s.Player(); p != nil {
			p.TogglePause()
		}
	case key.Matches(msg, m.Keys.External):
		if err := s.OpenExternally(); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		return m, m.setStatus("Opened in external player", false)
	case key.Matches(msg, m.Keys.Escape):
		s.CloseModal()
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleUpgradeKey(s *session.Session, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Enter):
		if s.ConfirmUpgrade() {
			return m, TickCmd(provisionRedraw)
		}
	case key.Matches(msg, m.Keys.Escape):
		s.CloseModal()
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// generalRows counts the General tab rows: three toggles and data usage
const generalRows = 4

func (m Model) handleSettingsKey(s *session.Session, msg tea.KeyMsg) (Model, tea.Cmd) {
	rows := m.settingsRows(s)

	switch {
	case key.Matches(msg, m.Keys.Escape):
		s.CloseModal()
		return m, nil
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.NextTab):
		m.Settings.NextTab()
		return m, nil
	case key.Matches(msg, m.Keys.PrevTab):
		m.Settings.PrevTab()
		return m, nil
	case key.Matches(msg, m.Keys.Up):
		m.Settings.MoveCursor(-1, rows)
		return m, nil
	case key.Matches(msg, m.Keys.Down):
		m.Settings.MoveCursor(1, rows)
		return m, nil
	case !key.Matches(msg, m.Keys.Enter):
		return m, nil
	}

	cursor := m.Settings.Cursor()
	switch m.Settings.Tab() {
	case components.TabGeneral:
		switch cursor {
		case 0:
			s.ToggleSetting(session.SettingDarkMode)
		case 1:
			s.ToggleSetting(session.SettingAutoPlay)
		case 2:
			s.ToggleSetting(session.SettingNotifications)
		case 3:
			s.CycleDataUsage()
		}
	case components.TabBilling:
		s.RequestUpgrade()
	case components.TabFavorites:
		if ids := s.Preferences().FavoriteIDs(); cursor < len(ids) {
			s.ToggleFavorite(ids[cursor])
		}
	case components.TabBlocked:
		if ids := s.Preferences().BlockedIDs(); cursor < len(ids) {
			s.ToggleBlocked(ids[cursor])
			m.clampCursors()
		}
	case components.TabAccount:
		return m.signOut()
	}
	m.Settings.ClampCursor(m.settingsRows(s))
	return m, nil
}

// settingsRows counts selectable rows on the active settings tab
func (m Model) settingsRows(s *session.Session) int {
	switch m.Settings.Tab() {
	case components.TabGeneral:
		return generalRows
	case components.TabFavorites:
		return len(s.Preferences().FavoriteIDs())
	case components.TabBlocked:
		return len(s.Preferences().BlockedIDs())
	default:
		return 0
	}
}

func (m Model) signOut() (Model, tea.Cmd) {
	if err := m.Front.SignOut(); err != nil && !errors.Is(err, domain.ErrNotSignedIn) {
		return m, m.setStatus(err.Error(), true)
	}
	m.State = StateSignIn
	m.SignIn.Reset()
	m.SearchBar.Clear()
	m.SearchBar.Blur()
	m.Jump.Hide()
	m.Settings.Reset()
	m.Row, m.Col, m.ResultCursor = 0, 0, 0
	return m, nil
}

func (m Model) handleSearchKey(s *session.Session, msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var done bool
	m.SearchBar, cmd, done = m.SearchBar.Update(msg)
	if m.SearchBar.QueryChanged() {
		s.SetSearchQuery(m.SearchBar.Query())
		m.ResultCursor = 0
		m.clampCursors()
	}
	if done {
		m.State = StateBrowsing
	}
	return m, cmd
}

func (m Model) handleJumpKey(s *session.Session, msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var selected bool
	m.Jump, cmd, selected = m.Jump.Update(msg)

	if !m.Jump.IsVisible() {
		m.State = StateBrowsing
		return m, cmd
	}
	if m.Jump.QueryChanged() {
		m.Jump.SetResults(s.Jump(m.Jump.Query()))
	}
	if selected {
		v, ok := m.Jump.Selected()
		m.Jump.Hide()
		m.State = StateBrowsing
		if ok {
			return m.play(s, v.ID)
		}
	}
	return m, cmd
}

func (m Model) handleBrowseKey(s *session.Session, msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(s, -1, 0)
	case key.Matches(msg, m.Keys.Down):
		m.moveCursor(s, 1, 0)
	case key.Matches(msg, m.Keys.Left):
		m.moveCursor(s, 0, -1)
	case key.Matches(msg, m.Keys.Right):
		m.moveCursor(s, 0, 1)

	case key.Matches(msg, m.Keys.Enter):
		if v, ok := m.selected(s); ok {
			return m.play(s, v.ID)
		}

	case key.Matches(msg, m.Keys.Search):
		m.State = StateSearching
		return m, m.SearchBar.Focus()

	case key.Matches(msg, m.Keys.Jump):
		m.State = StateJumping
		cmd := m.Jump.Show()
		m.Jump.SetResults(s.Jump(""))
		return m, cmd

	case key.Matches(msg, m.Keys.Favorite):
		if v, ok := m.selected(s); ok {
			s.ToggleFavorite(v.ID)
		}

	case key.Matches(msg, m.Keys.Block):
		if v, ok := m.selected(s); ok {
			s.ToggleBlocked(v.ID)
			m.clampCursors()
			return m, m.setStatus(fmt.Sprintf("Blocked %s (unblock in settings)", v.Name), false)
		}

	case key.Matches(msg, m.Keys.Settings):
		m.Settings.Reset()
		s.OpenSettings()

	case key.Matches(msg, m.Keys.Upgrade):
		if !s.RequestUpgrade() {
			return m, m.setStatus("You're already on Premium", false)
		}

	case key.Matches(msg, m.Keys.Escape):
		if s.Query() != "" {
			m.SearchBar.Clear()
			m.SearchBar.QueryChanged()
			s.SetSearchQuery("")
			m.clampCursors()
		}

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
	}
	return m, nil
}

// play sends a request through the session's entitlement gate
func (m Model) play(s *session.Session, id domain.TitleID) (Model, tea.Cmd) {
	if _, err := s.RequestPlayback(id); err != nil {
		m.logger.Warn("playback request failed", "titleID", id, "error", err)
		return m, nil
	}
	return m, nil
}
