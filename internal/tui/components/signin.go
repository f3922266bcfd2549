package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/streamvault/internal/tui/styles"
)

// SignInModal collects an email and password. The form accepts anything;
// it only refuses to submit when both fields are blank.
type SignInModal struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	signUp   bool
	width    int
	height   int
}

// NewSignInModal creates a sign-in form with the email field focused
func NewSignInModal() SignInModal {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 100
	email.Width = 32
	email.Prompt = ""
	email.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	email.PlaceholderStyle = styles.DimStyle
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 100
	password.Width = 32
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	password.PlaceholderStyle = styles.DimStyle

	return SignInModal{email: email, password: password}
}

// Reset clears both fields and returns to login mode
func (m *SignInModal) Reset() {
	m.email.SetValue("")
	m.password.SetValue("")
	m.signUp = false
	m.focus = 0
	m.email.Focus()
	m.password.Blur()
}

// SetSize updates the area the modal centers in
func (m *SignInModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Email returns the email field
func (m SignInModal) Email() string { return m.email.Value() }

// Password returns the password field
func (m SignInModal) Password() string { return m.password.Value() }

// SignUp reports whether the form is in sign-up mode
func (m SignInModal) SignUp() bool { return m.signUp }

// Update handles input events, returns (modal, cmd, submitted)
func (m SignInModal) Update(msg tea.Msg) (SignInModal, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, InputKeys.Enter):
			if strings.TrimSpace(m.Email()) == "" && strings.TrimSpace(m.Password()) == "" {
				return m, nil, false
			}
			return m, nil, true
		case key.Matches(keyMsg, InputKeys.Tab), key.Matches(keyMsg, InputKeys.Down), key.Matches(keyMsg, InputKeys.Up):
			m.switchFocus()
			return m, nil, false
		case key.Matches(keyMsg, InputKeys.Mode):
			m.signUp = !m.signUp
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd, false
}

func (m *SignInModal) switchFocus() {
	m.focus = 1 - m.focus
	if m.focus == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.email.Blur()
	}
}

// View renders the sign-in modal centered on screen
func (m SignInModal) View() string {
	const modalWidth = 40

	title, alt := "Sign In", "New to StreamVault? C-t to sign up"
	if m.signUp {
		title, alt = "Sign Up", "Already a member? C-t to sign in"
	}

	field := func(label string, input textinput.Model, focused bool) string {
		labelStyle := styles.DimStyle
		if focused {
			labelStyle = styles.AccentStyle
		}
		return labelStyle.Render(label) + "\n" + input.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.LogoStyle.Render("STREAMVAULT"),
		"",
		styles.ModalTitleStyle.Render(title),
		field("Email", m.email, m.focus == 0),
		"",
		field("Password", m.password, m.focus == 1),
		"",
		styles.DimStyle.Render(alt),
	)

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(content)

	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
