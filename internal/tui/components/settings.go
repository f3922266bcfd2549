package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/tui/styles"
)

// SettingsTab identifies a settings panel tab
type SettingsTab int

const (
	TabGeneral SettingsTab = iota
	TabBilling
	TabFavorites
	TabBlocked
	TabAccount
	tabCount
)

func (t SettingsTab) String() string {
	switch t {
	case TabGeneral:
		return "General"
	case TabBilling:
		return "Billing"
	case TabFavorites:
		return "Favorites"
	case TabBlocked:
		return "Blocked"
	case TabAccount:
		return "Account"
	default:
		return ""
	}
}

// GeneralRow is one toggle line on the General tab
type GeneralRow struct {
	Label string
	Value string
}

// SettingsData is what the panel renders; the app rebuilds it every frame
type SettingsData struct {
	General    []GeneralRow
	Email      string
	Tier       domain.Tier
	Plan       domain.Plan
	Offers     []domain.PlanOffer
	CanUpgrade bool
	Favorites  []domain.Title
	Blocked    []domain.Title
}

// SettingsPanel tracks the active tab and the row cursor within it
type SettingsPanel struct {
	tab    SettingsTab
	cursor int
	width  int
	height int
}

// NewSettingsPanel starts on the General tab
func NewSettingsPanel() SettingsPanel {
	return SettingsPanel{}
}

// Reset returns to the General tab
func (p *SettingsPanel) Reset() {
	p.tab = TabGeneral
	p.cursor = 0
}

// SetSize updates the component dimensions
func (p *SettingsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Tab returns the active tab
func (p SettingsPanel) Tab() SettingsTab { return p.tab }

// Cursor returns the row cursor on the active tab
func (p SettingsPanel) Cursor() int { return p.cursor }

// NextTab moves right, wrapping
func (p *SettingsPanel) NextTab() {
	p.tab = (p.tab + 1) % tabCount
	p.cursor = 0
}

// PrevTab moves left, wrapping
func (p *SettingsPanel) PrevTab() {
	p.tab = (p.tab + tabCount - 1) % tabCount
	p.cursor = 0
}

// MoveCursor shifts the row cursor, clamped to rows
func (p *SettingsPanel) MoveCursor(delta, rows int) {
	if rows <= 0 {
		p.cursor = 0
		return
	}
	p.cursor = min(max(p.cursor+delta, 0), rows-1)
}

// ClampCursor keeps the cursor valid after a list shrinks
func (p *SettingsPanel) ClampCursor(rows int) {
	p.MoveCursor(0, rows)
}

// View renders the panel for data
func (p SettingsPanel) View(data SettingsData) string {
	modalWidth := min(max(p.width*2/3, 50), 90)
	inner := modalWidth - 4

	var tabs []string
	for t := TabGeneral; t < tabCount; t++ {
		if t == p.tab {
			tabs = append(tabs, styles.ActiveTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(t.String()))
		}
	}

	var body string
	switch p.tab {
	case TabGeneral:
		body = p.viewGeneral(data, inner)
	case TabBilling:
		body = viewBilling(data, inner)
	case TabFavorites:
		body = p.viewTitles(data.Favorites, "No favorites yet. Press f on a title to add it.", "enter: remove", inner)
	case TabBlocked:
		body = p.viewTitles(data.Blocked, "Nothing blocked.", "enter: unblock", inner)
	case TabAccount:
		body = viewAccount(data)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Settings"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		body,
	)

	modal := styles.ModalStyle.Width(modalWidth).Render(content)
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, modal)
}

func (p SettingsPanel) viewGeneral(data SettingsData, width int) string {
	var b strings.Builder
	for i, row := range data.General {
		line := fmt.Sprintf("%-20s %s", row.Label, row.Value)
		if i == p.cursor {
			b.WriteString(styles.SelectedItemStyle.Width(width).Render(line))
		} else {
			b.WriteString(styles.NormalItemStyle.Width(width).Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.DimStyle.Render("enter: change"))
	return b.String()
}

func viewBilling(data SettingsData, width int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Current plan: " + data.Tier.DisplayName()))
	if data.Plan.HasAds {
		b.WriteString(" " + styles.DimBadgeStyle.Render("with ads"))
	} else {
		b.WriteString(" " + styles.BadgeStyle.Render("ad-free"))
	}
	b.WriteString("\n")
	for _, f := range data.Plan.Features {
		b.WriteString(styles.SubtitleStyle.Render("  ✓ " + f))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, o := range data.Offers {
		name := o.Name
		if o.Popular {
			name += " " + styles.BadgeStyle.Render("Most popular")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", styles.TitleStyle.Render(name), styles.RatingStyle.Render(o.Price)))
		b.WriteString(styles.DimStyle.Render(styles.WordWrap(strings.Join(o.Features, " · "), width)))
		b.WriteString("\n")
	}

	if data.CanUpgrade {
		b.WriteString("\n")
		b.WriteString(styles.AccentStyle.Render("enter: upgrade to Premium"))
	}
	return b.String()
}

func (p SettingsPanel) viewTitles(titles []domain.Title, empty, hint string, width int) string {
	if len(titles) == 0 {
		return styles.DimStyle.Render(empty)
	}
	var b strings.Builder
	for i, t := range titles {
		line := fmt.Sprintf("%s  %s", styles.Truncate(t.Name, width-12), t.Subtitle())
		if i == p.cursor {
			b.WriteString(styles.SelectedItemStyle.Width(width).Render(line))
		} else {
			b.WriteString(styles.NormalItemStyle.Width(width).Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.DimStyle.Render(hint))
	return b.String()
}

func viewAccount(data SettingsData) string {
	email := data.Email
	if email == "" {
		email = "(no email)"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.SubtitleStyle.Render("Signed in as "+email),
		styles.SubtitleStyle.Render("Plan: "+data.Tier.DisplayName()),
		"",
		styles.AccentStyle.Render("enter: sign out"),
	)
}
