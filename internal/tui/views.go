package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/session"
	"github.com/mmcdole/streamvault/internal/tui/components"
	"github.com/mmcdole/streamvault/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	s := m.session()
	if m.State == StateSignIn || s == nil {
		return m.SignIn.View()
	}

	switch modal := s.Modal().(type) {
	case domain.AdModal:
		if ad := s.Ad(); ad != nil {
			return components.RenderAd(ad, modal.Title, m.Width, m.Height)
		}
	case domain.PlayerModal:
		if p := s.Player(); p != nil {
			return m.withStatus(components.RenderPlayer(p, m.External, m.Width, m.Height-1))
		}
	case domain.UpgradeModal:
		if u := s.Upgrade(); u != nil {
			premium, _ := s.Catalog().Plan(domain.TierPremium)
			return components.RenderUpgrade(u, premium, time.Now(), m.Width, m.Height)
		}
	case domain.SettingsModal:
		return m.Settings.View(buildSettingsData(s))
	}

	if m.State == StateJumping && m.Jump.IsVisible() {
		return m.Jump.View()
	}

	return m.renderBrowse(s)
}

// renderBrowse draws the header, the catalog body, and the footer
func (m Model) renderBrowse(s *session.Session) string {
	header := m.renderHeader(s)

	var body string
	if s.Searching() {
		body = components.RenderResults(strings.TrimSpace(s.Query()), s.Views().Results, s.Suggestions(), m.ResultCursor, m.Width)
	} else {
		body = m.renderShelves(s)
	}

	footer := m.Help.View(m.Keys)
	bodyHeight := m.Height - lipgloss.Height(header) - lipgloss.Height(footer) - 1
	body = clip(body, bodyHeight)

	return m.withStatus(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

func (m Model) renderHeader(s *session.Session) string {
	logo := styles.LogoStyle.Render("STREAMVAULT")

	bar := styles.DimStyle.Render("/ search")
	if m.State == StateSearching || s.Query() != "" {
		bar = m.SearchBar.View()
	}

	tier := styles.DimBadgeStyle.Render(s.Tier().DisplayName())
	if s.Tier() == domain.TierPremium {
		tier = styles.BadgeStyle.Render(s.Tier().DisplayName())
	}
	right := styles.DimStyle.Render(styles.Truncate(s.Email(), 30)) + " " + tier

	gap := max(1, m.Width-lipgloss.Width(logo)-lipgloss.Width(bar)-lipgloss.Width(right)-4)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		logo, "  ", bar, strings.Repeat(" ", gap), right,
	) + "\n"
}

// renderShelves draws the rows from the focused one downward so the
// cursor never scrolls off screen
func (m Model) renderShelves(s *session.Session) string {
	rows := browseRows(s)
	if len(rows) == 0 {
		return styles.SubtitleStyle.Render("Nothing to show. Unblock titles in settings (,).")
	}

	start := 0
	if m.Row > 1 {
		start = m.Row - 1
	}

	var parts []string
	for i := start; i < len(rows); i++ {
		row := rows[i]
		focused := i == m.Row
		if row.hero {
			parts = append(parts, components.RenderHero(row.heroView, row.featured, focused, m.Width))
			continue
		}
		cursor := -1
		if focused {
			cursor = m.Col
		}
		parts = append(parts, components.RenderShelf(row.shelf, cursor, m.Width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// withStatus appends the status line when one is set
func (m Model) withStatus(view string) string {
	if m.StatusMsg == "" {
		return view
	}
	style := styles.SuccessStyle
	if m.StatusIsErr {
		style = styles.ErrorStyle
	}
	return view + "\n" + style.Render(m.StatusMsg)
}

// clip keeps at most height lines
func clip(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}

// buildSettingsData gathers what the settings panel shows for s
func buildSettingsData(s *session.Session) components.SettingsData {
	set := s.Settings()
	plan, _ := s.Plan()
	c := s.Catalog()

	titles := func(ids []domain.TitleID) []domain.Title {
		out := make([]domain.Title, 0, len(ids))
		for _, id := range ids {
			if t, ok := c.Title(id); ok {
				out = append(out, t)
			}
		}
		return out
	}

	return components.SettingsData{
		General: []components.GeneralRow{
			{Label: "Dark mode", Value: onOff(set.DarkMode)},
			{Label: "Autoplay next episode", Value: onOff(set.AutoPlay)},
			{Label: "Notifications", Value: onOff(set.Notifications)},
			{Label: "Data usage", Value: set.DataUsage.String()},
		},
		Email:      s.Email(),
		Tier:       s.Tier(),
		Plan:       plan,
		Offers:     c.Offers(),
		CanUpgrade: s.Tier() != domain.TierPremium,
		Favorites:  titles(s.Preferences().FavoriteIDs()),
		Blocked:    titles(s.Preferences().BlockedIDs()),
	}
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
