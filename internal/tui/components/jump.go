package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/search"
	"github.com/mmcdole/streamvault/internal/tui/styles"
)

// JumpPalette is the fuzzy quick-jump modal over the current search results
type JumpPalette struct {
	input     textinput.Model
	results   []search.JumpMatch
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string
}

// NewJumpPalette creates a hidden palette
func NewJumpPalette() JumpPalette {
	ti := textinput.New()
	ti.Placeholder = "Jump to title..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "» "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return JumpPalette{input: ti}
}

// Show makes the palette visible and focuses the input
func (o *JumpPalette) Show() tea.Cmd {
	o.visible = true
	o.input.SetValue("")
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
	return o.input.Focus()
}

// Hide hides the palette
func (o *JumpPalette) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the palette is visible
func (o JumpPalette) IsVisible() bool {
	return o.visible
}

// SetResults sets the ranked matches
func (o *JumpPalette) SetResults(results []search.JumpMatch) {
	o.results = results
	o.cursor = min(o.cursor, max(0, len(results)-1))
}

// SetSize updates the component dimensions
func (o *JumpPalette) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = max(10, width/2)
}

// Query returns the current pattern
func (o JumpPalette) Query() string {
	return o.input.Value()
}

// QueryChanged returns true if the pattern changed since last check and updates prevQuery
func (o *JumpPalette) QueryChanged() bool {
	current := o.input.Value()
	if current != o.prevQuery {
		o.prevQuery = current
		o.cursor = 0
		return true
	}
	return false
}

// Selected returns the highlighted title
func (o JumpPalette) Selected() (domain.TitleView, bool) {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return domain.TitleView{}, false
	}
	return o.results[o.cursor].View, true
}

// Update handles messages, returns (palette, cmd, selected)
func (o JumpPalette) Update(msg tea.Msg) (JumpPalette, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, InputKeys.Escape):
			o.Hide()
			return o, nil, false
		case key.Matches(keyMsg, InputKeys.Enter):
			return o, nil, len(o.results) > 0
		case key.Matches(keyMsg, InputKeys.Down):
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, false
		case key.Matches(keyMsg, InputKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd, false
}

// View renders the palette
func (o JumpPalette) View() string {
	if !o.visible {
		return ""
	}

	modalWidth := min(max(o.width*2/3, 40), 80)
	const maxResults = 10

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Jump"))
	b.WriteString("\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")

	if len(o.results) == 0 {
		b.WriteString(styles.DimStyle.Render("No matches"))
	}
	for i, r := range o.results[:min(len(o.results), maxResults)] {
		selected := i == o.cursor
		title := styles.Truncate(r.View.Name, modalWidth-20)
		matched := r.MatchedIndexes
		if len([]rune(title)) < len([]rune(r.View.Name)) {
			matched = nil
		}
		b.WriteString(styles.DimBadgeStyle.Render(fmt.Sprintf("%d", r.View.Year)))
		b.WriteString(" ")
		b.WriteString(highlightMatches(title, matched, selected))
		b.WriteString("\n")
	}
	if len(o.results) > maxResults {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(o.results)-maxResults)))
	}

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(lipgloss.NewStyle().Width(modalWidth - 4).Render(b.String()))

	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, modal)
}

// highlightMatches renders text with matched rune positions emphasized
func highlightMatches(text string, matchedIndexes []int, selected bool) string {
	normal, match := styles.NormalItemStyle.UnsetPadding(), styles.MatchHighlightStyle
	if selected {
		normal, match = styles.SelectedItemStyle.UnsetPadding(), styles.MatchHighlightSelectedStyle
	}
	if len(matchedIndexes) == 0 {
		return normal.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	// Batch consecutive runes with the same style
	var out strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		isMatch := matchSet[i]
		start := i
		for i < len(runes) && matchSet[i] == isMatch {
			i++
		}
		if isMatch {
			out.WriteString(match.Render(string(runes[start:i])))
		} else {
			out.WriteString(normal.Render(string(runes[start:i])))
		}
	}
	return out.String()
}
