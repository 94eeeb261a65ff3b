package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zft5024/manus-aicad/internal"
)

const (
	profName = iota
	profEmail
	profCompany
	profBio
)

// profileModel shows the current identity and lets the user edit it.
// Saving goes through the session store's partial-update path, so fields
// left unchanged keep their stored value.
type profileModel struct {
	styles  Styles
	session *internal.SessionStore

	editing bool
	inputs  []textinput.Model
	focus   int
	notice  string
}

func newProfileModel(styles Styles, session *internal.SessionStore) profileModel {
	placeholders := []string{"Name", "Email", "Company (optional)", "Bio (optional)"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 500
		ti.Width = 40
		inputs[i] = ti
	}

	return profileModel{
		styles:  styles,
		session: session,
		inputs:  inputs,
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigate(internal.RouteMain)
		case "e":
			return m.beginEdit()
		case "l":
			if err := m.session.Logout(); err != nil {
				m.notice = "Could not clear your session."
				return m, nil
			}
			return m, navigate(internal.RouteLanding)
		}
	}
	return m, nil
}

func (m profileModel) beginEdit() (profileModel, tea.Cmd) {
	id := m.session.Current()
	if id == nil {
		return m, navigate(internal.RouteLogin)
	}

	values := []string{id.Name, id.Email, id.Company, id.Bio}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
	m.focus = 0
	m.editing = true
	m.notice = ""
	return m, textinput.Blink
}

func (m profileModel) updateEditing(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.editing = false
			return m, nil
		case "tab":
			return m.moveFocus(1)
		case "shift+tab":
			return m.moveFocus(-1)
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m.moveFocus(1)
			}
			return m.save()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m profileModel) moveFocus(delta int) (profileModel, tea.Cmd) {
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

func (m profileModel) save() (profileModel, tea.Cmd) {
	current := m.session.Current()
	if current == nil {
		return m, navigate(internal.RouteLogin)
	}

	// Only changed fields go into the partial update.
	var update internal.ProfileUpdate
	if v := m.inputs[profName].Value(); v != current.Name {
		update.Name = &v
	}
	if v := m.inputs[profEmail].Value(); v != current.Email {
		update.Email = &v
	}
	if v := m.inputs[profCompany].Value(); v != current.Company {
		update.Company = &v
	}
	if v := m.inputs[profBio].Value(); v != current.Bio {
		update.Bio = &v
	}

	if err := m.session.UpdateProfile(update); err != nil {
		m.notice = "Could not save your profile."
		return m, nil
	}

	m.editing = false
	m.notice = "Profile updated successfully!"
	return m, nil
}

func (m profileModel) View() string {
	s := m.styles

	rows := []string{s.Title.Render("Your Profile"), ""}

	if m.editing {
		labels := []string{"Name", "Email", "Company", "Bio"}
		for i, input := range m.inputs {
			rows = append(rows, s.Accent.Render(labels[i]), input.View())
		}
		rows = append(rows, "", s.Help.Render("enter next/save • tab next field • esc cancel"))
	} else {
		id := m.session.Current()
		if id != nil {
			rows = append(rows,
				s.Accent.Render("Name    ")+id.Name,
				s.Accent.Render("Email   ")+id.Email,
				s.Accent.Render("Company ")+valueOrDash(id.Company),
				s.Accent.Render("Bio     ")+valueOrDash(id.Bio),
			)
		}
		rows = append(rows, "", s.Help.Render("e edit • l log out • esc back"))
	}

	if m.notice != "" {
		rows = append(rows, "", s.Notice.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
