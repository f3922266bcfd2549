package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/streamvault/internal/tui/styles"
)

// SearchBar is the catalog query input. Every keystroke changes the query.
type SearchBar struct {
	input     textinput.Model
	prevQuery string
}

// NewSearchBar creates an unfocused search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Titles, genres, descriptions"
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	return SearchBar{input: ti}
}

// Focus starts capturing keystrokes
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur stops capturing keystrokes; the query is kept
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the bar captures keystrokes
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Clear empties the query
func (s *SearchBar) Clear() {
	s.input.SetValue("")
}

// SetWidth sets the input width
func (s *SearchBar) SetWidth(width int) {
	s.input.Width = max(10, width-4)
}

// Query returns the current text
func (s SearchBar) Query() string {
	return s.input.Value()
}

// QueryChanged returns true if the query changed since last check and updates prevQuery
func (s *SearchBar) QueryChanged() bool {
	current := s.input.Value()
	if current != s.prevQuery {
		s.prevQuery = current
		return true
	}
	return false
}

// Update handles input events, returns (bar, cmd, done). done is true when
// the user leaves the bar with enter or esc.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, InputKeys.Enter):
			s.Blur()
			return s, nil, true
		case key.Matches(keyMsg, InputKeys.Escape):
			s.Clear()
			s.Blur()
			return s, nil, true
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

// View renders the bar
func (s SearchBar) View() string {
	return s.input.View()
}
