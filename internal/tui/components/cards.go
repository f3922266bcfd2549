package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/tui/styles"
)

// cardWidth is the rendered width of one card including its border
const cardWidth = 28

// CardsPerRow returns how many cards fit in width
func CardsPerRow(width int) int {
	return max(1, width/cardWidth)
}

// RenderCard renders one title card
func RenderCard(v domain.TitleView, selected bool) string {
	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}

	name := styles.Truncate(v.Name, 20)
	var marks []string
	if v.IsFavorite {
		marks = append(marks, styles.FavoriteMark)
	}
	if v.IsBlocked {
		marks = append(marks, styles.BlockedMark)
	}
	header := styles.TitleStyle.Render(name)
	if len(marks) > 0 {
		header += " " + strings.Join(marks, "")
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		styles.RatingStyle.Render(fmt.Sprintf("%s %.1f", styles.StarChar, v.Rating))+
			styles.DimStyle.Render(fmt.Sprintf("  %d  %s", v.Year, v.Duration)),
		styles.DimStyle.Render(styles.Truncate(v.GenreList(), 22)),
	))
}

// RenderShelf renders a named row of cards, scrolled so the cursor is visible.
// cursor < 0 means the row is not focused.
func RenderShelf(shelf domain.ShelfView, cursor, width int) string {
	perRow := CardsPerRow(width)
	start := 0
	if cursor >= perRow {
		start = cursor - perRow + 1
	}
	end := min(len(shelf.Titles), start+perRow)

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, RenderCard(shelf.Titles[i], i == cursor))
	}

	name := shelf.Name
	if cursor >= 0 {
		name = styles.AccentStyle.Render("▍") + name
	}
	more := ""
	if end < len(shelf.Titles) {
		more = styles.DimStyle.Render(fmt.Sprintf("  +%d", len(shelf.Titles)-end))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ShelfTitleStyle.Render(name)+more,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	)
}

// RenderHero renders the featured banner
func RenderHero(v domain.TitleView, f domain.Featured, focused bool, width int) string {
	badge := styles.DimBadgeStyle.Render("FEATURED")
	if focused {
		badge = styles.BadgeStyle.Render("FEATURED")
	}
	meta := fmt.Sprintf("%s %.1f  ·  %d  ·  %s  ·  %s  ·  %s",
		styles.StarChar, v.Rating, v.Year, f.ContentRating, f.Seasons, v.GenreList())
	if v.IsFavorite {
		meta += "  " + styles.FavoriteMark
	}

	hint := styles.DimStyle.Render("enter: play")
	return styles.HeroStyle.Width(max(20, width-4)).Render(lipgloss.JoinVertical(lipgloss.Left,
		badge,
		styles.LogoStyle.Render(strings.ToUpper(v.Name)),
		styles.RatingStyle.Render(meta),
		styles.SubtitleStyle.Render(styles.WordWrap(v.Description, max(20, width-10))),
		hint,
	))
}

// RenderResults renders search results as a wrapped card grid with a header
func RenderResults(query string, results []domain.TitleView, suggestions []string, cursor, width int) string {
	header := styles.TitleStyle.Render(fmt.Sprintf("Search Results for %q", query)) +
		styles.DimStyle.Render(fmt.Sprintf(" (%d results)", len(results)))

	if len(results) == 0 {
		lines := []string{header, "", styles.SubtitleStyle.Render("No titles match your search.")}
		if len(suggestions) > 0 {
			lines = append(lines, "", styles.DimStyle.Render("Did you mean:"))
			for _, s := range suggestions {
				lines = append(lines, "  "+styles.AccentStyle.Render(s))
			}
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	perRow := CardsPerRow(width)
	var rows []string
	for start := 0; start < len(results); start += perRow {
		end := min(len(results), start+perRow)
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, RenderCard(results[i], i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header, ""}, rows...)...)
}
