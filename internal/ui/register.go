package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zft5024/manus-aicad/internal"
)

const (
	regName = iota
	regEmail
	regPassword
	regConfirm
)

// registerModel is the account-creation screen. The password pair is the
// only validated input: a mismatch is surfaced to the user and no
// identity is created.
type registerModel struct {
	styles  Styles
	session *internal.SessionStore
	inputs  []textinput.Model
	focus   int
	notice  string
}

func newRegisterModel(styles Styles, session *internal.SessionStore) registerModel {
	labels := []struct {
		placeholder string
		secret      bool
	}{
		{"Your name", false},
		{"you@example.com", false},
		{"password", true},
		{"confirm password", true},
	}

	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.CharLimit = 254
		ti.Width = 40
		if l.secret {
			ti.EchoMode = textinput.EchoPassword
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	return registerModel{
		styles:  styles,
		session: session,
		inputs:  inputs,
	}
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigate(internal.RouteLanding)
		case "ctrl+l":
			return m, navigate(internal.RouteLogin)
		case "tab":
			return m.moveFocus(1)
		case "shift+tab":
			return m.moveFocus(-1)
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m.moveFocus(1)
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m registerModel) moveFocus(delta int) (registerModel, tea.Cmd) {
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, textinput.Blink
}

func (m registerModel) submit() (registerModel, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[regName].Value())
	email := strings.TrimSpace(m.inputs[regEmail].Value())
	password := m.inputs[regPassword].Value()
	confirm := m.inputs[regConfirm].Value()

	if email == "" {
		m.notice = "Email is required."
		return m, nil
	}
	if password != confirm {
		m.notice = "Passwords do not match!"
		return m, nil
	}

	identity := internal.NewIdentity(name, email)
	if err := m.session.Register(identity); err != nil {
		m.notice = "Could not save your session. Please try again."
		return m, nil
	}
	return m, navigate(internal.RouteMain)
}

func (m registerModel) View() string {
	s := m.styles

	labels := []string{"Name", "Email", "Password", "Confirm Password"}
	rows := []string{
		s.Title.Render("Create Your Account"),
		s.Subtle.Render("Start turning ideas into 3D models"),
		"",
	}
	for i, input := range m.inputs {
		rows = append(rows, s.Accent.Render(labels[i]), input.View())
	}
	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if m.notice != "" {
		form = lipgloss.JoinVertical(lipgloss.Left, form, "", s.Error.Render(m.notice))
	}

	help := s.Help.Render("enter next/submit • tab next field • ctrl+l sign in • esc back")
	return lipgloss.JoinVertical(lipgloss.Left, form, "", help)
}
