package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zft5024/manus-aicad/internal"
)

// landingModel is the public marketing screen with the waitlist form.
type landingModel struct {
	styles   Styles
	feedback *internal.FeedbackStore
	email    textinput.Model
	notice   string
}

func newLandingModel(styles Styles, feedback *internal.FeedbackStore) landingModel {
	ti := textinput.New()
	ti.Placeholder = "Enter your email address"
	ti.CharLimit = 254
	ti.Width = 40
	ti.Focus()

	return landingModel{
		styles:   styles,
		feedback: feedback,
		email:    ti,
	}
}

func (m landingModel) Update(msg tea.Msg) (landingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+l":
			return m, navigate(internal.RouteLogin)
		case "ctrl+r":
			return m, navigate(internal.RouteRegister)
		case "enter":
			email := m.email.Value()
			if err := m.feedback.AddWaitlist(email); err != nil {
				m.notice = ""
				return m, nil
			}
			m.notice = fmt.Sprintf("Thank you! We'll contact you at %s", email)
			m.email.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

func (m landingModel) View() string {
	s := m.styles

	title := s.Title.Render("AiCAD.app")
	tagline := s.Header.Render("Describe it. See it. Ship it.")
	blurb := s.Subtle.Render(
		"Transform text descriptions into 3D CAD models with an AI assistant.\n" +
			"Chat your way to a design, inspect it from every angle, and iterate\n" +
			"until it's right.")

	waitlist := lipgloss.JoinVertical(lipgloss.Left,
		s.Accent.Render("Join our waitlist"),
		m.email.View(),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		tagline,
		"",
		blurb,
		"",
		waitlist,
	)
	if m.notice != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.styles.Notice.Render(m.notice))
	}

	help := s.Help.Render("enter join waitlist • ctrl+l sign in • ctrl+r create account • ctrl+c quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, "", help)
}
