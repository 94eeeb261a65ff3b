package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zft5024/manus-aicad/internal"
)

var mainMenuItems = []string{
	"Start Creating",
	"Profile",
	"Contact Us",
	"Log Out",
}

var mainFeatures = []struct {
	title string
	desc  string
}{
	{"AI-Powered Generation", "Transform text descriptions into accurate 3D CAD models."},
	{"Interactive Preview", "Rotate and zoom the generated model from every angle."},
	{"Conversational Design", "Refine your design through a natural back-and-forth."},
}

// mainModel is the authenticated home screen: feature overview, shortcuts
// into the app, and the contact form.
type mainModel struct {
	styles   Styles
	session  *internal.SessionStore
	feedback *internal.FeedbackStore

	cursor  int
	contact bool // contact form open
	email   textinput.Model
	message textinput.Model
	focus   int
	notice  string
}

func newMainModel(styles Styles, session *internal.SessionStore, feedback *internal.FeedbackStore) mainModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 40
	if id := session.Current(); id != nil {
		email.SetValue(id.Email)
	}

	message := textinput.New()
	message.Placeholder = "How can we help?"
	message.CharLimit = 500
	message.Width = 40

	return mainModel{
		styles:   styles,
		session:  session,
		feedback: feedback,
		email:    email,
		message:  message,
	}
}

func (m mainModel) Update(msg tea.Msg) (mainModel, tea.Cmd) {
	if m.contact {
		return m.updateContact(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(mainMenuItems)-1 {
				m.cursor++
			}
		case "enter":
			return m.activate()
		}
	}
	return m, nil
}

func (m mainModel) activate() (mainModel, tea.Cmd) {
	switch m.cursor {
	case 0:
		return m, navigate(internal.RouteConversation)
	case 1:
		return m, navigate(internal.RouteProfile)
	case 2:
		m.contact = true
		m.focus = 0
		m.notice = ""
		m.email.Focus()
		return m, textinput.Blink
	case 3:
		if err := m.session.Logout(); err != nil {
			m.notice = "Could not clear your session."
			return m, nil
		}
		return m, navigate(internal.RouteLanding)
	}
	return m, nil
}

func (m mainModel) updateContact(msg tea.Msg) (mainModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.contact = false
			m.email.Blur()
			m.message.Blur()
			return m, nil
		case "tab", "shift+tab":
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.email.Focus()
				m.message.Blur()
			} else {
				m.message.Focus()
				m.email.Blur()
			}
			return m, textinput.Blink
		case "enter":
			if err := m.feedback.AddContact(m.email.Value(), m.message.Value()); err != nil {
				m.notice = "Please fill in both your email and a message."
				return m, nil
			}
			m.notice = fmt.Sprintf("Thank you for your message! We'll get back to you at %s", m.email.Value())
			m.message.Reset()
			m.contact = false
			m.email.Blur()
			m.message.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m mainModel) View() string {
	s := m.styles

	name := ""
	if id := m.session.Current(); id != nil {
		name = id.Name
	}

	rows := []string{
		s.Title.Render("AiCAD.app"),
		s.Subtle.Render("Welcome back, " + name),
		"",
	}

	for _, f := range mainFeatures {
		rows = append(rows, s.Accent.Render(f.title)+"  "+s.Subtle.Render(f.desc))
	}
	rows = append(rows, "")

	if m.contact {
		rows = append(rows,
			s.Header.Render("Contact Us"),
			s.Accent.Render("Email"),
			m.email.View(),
			s.Accent.Render("Message"),
			m.message.View(),
		)
	} else {
		for i, item := range mainMenuItems {
			marker := "  "
			style := s.Blurred
			if i == m.cursor {
				marker = "> "
				style = s.Focused
			}
			rows = append(rows, marker+style.Render(item))
		}
	}

	if m.notice != "" {
		rows = append(rows, "", s.Notice.Render(m.notice))
	}

	help := "up/down select • enter activate • ctrl+c quit"
	if m.contact {
		help = "enter send • tab switch field • esc cancel"
	}
	rows = append(rows, "", s.Help.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
