package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zft5024/manus-aicad/internal"
)

// loginModel is the sign-in screen. Authentication is mock: any email
// and password produce a session, with the display name derived from the
// email local part.
type loginModel struct {
	styles  Styles
	session *internal.SessionStore
	inputs  []textinput.Model
	focus   int
	notice  string
}

func newLoginModel(styles Styles, session *internal.SessionStore) loginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 40

	return loginModel{
		styles:  styles,
		session: session,
		inputs:  []textinput.Model{email, password},
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigate(internal.RouteLanding)
		case "ctrl+r":
			return m, navigate(internal.RouteRegister)
		case "tab", "shift+tab":
			m.focus = (m.focus + 1) % len(m.inputs)
			for i := range m.inputs {
				if i == m.focus {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, textinput.Blink
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[0].Value())
	if email == "" {
		m.notice = "Email is required."
		return m, nil
	}

	identity := internal.NewIdentity("", email)
	if err := m.session.Login(identity); err != nil {
		m.notice = "Could not save your session. Please try again."
		return m, nil
	}
	return m, navigate(internal.RouteMain)
}

func (m loginModel) View() string {
	s := m.styles

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Welcome Back"),
		s.Subtle.Render("Sign in to continue creating amazing 3D models"),
		"",
		s.Accent.Render("Email"),
		m.inputs[0].View(),
		"",
		s.Accent.Render("Password"),
		m.inputs[1].View(),
	)
	if m.notice != "" {
		form = lipgloss.JoinVertical(lipgloss.Left, form, "", s.Error.Render(m.notice))
	}

	help := s.Help.Render("enter sign in • tab next field • ctrl+r create account • esc back")
	return lipgloss.JoinVertical(lipgloss.Left, form, "", help)
}
