package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zft5024/manus-aicad/internal"
	"github.com/zft5024/manus-aicad/internal/export"
)

// focus targets within the conversation screen.
const (
	focusChat = iota
	focusViewer
)

// generationDoneMsg is delivered when the simulated generation delay has
// elapsed.
type generationDoneMsg struct{}

// conversationModel is the core screen: a chat pane driven by the
// conversation engine next to a preview pane driven by the view
// transform. Both are created fresh when the screen is entered and
// discarded when it is left.
type conversationModel struct {
	styles    Styles
	session   *internal.SessionStore
	engine    *internal.Engine
	transform internal.ViewTransform
	exportDir string

	input    textinput.Model
	log      viewport.Model
	spin     spinner.Model
	focus    int
	notice   string
	width    int
	height   int
	ready    bool
	atBottom bool
}

func newConversationModel(styles Styles, session *internal.SessionStore, engine *internal.Engine, exportDir string) *conversationModel {
	ti := textinput.New()
	ti.Placeholder = "Describe the 3D model you want to create..."
	ti.CharLimit = 1000
	ti.Width = 50
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Accent

	m := &conversationModel{
		styles:    styles,
		session:   session,
		engine:    engine,
		transform: internal.NewViewTransform(),
		exportDir: exportDir,
		input:     ti,
		log:       viewport.New(40, 10),
		spin:      sp,
	}

	// Auto-scroll: every append pins the log to the newest message.
	engine.OnAppend(func(internal.Message) {
		m.atBottom = true
	})

	return m
}

func (m *conversationModel) Update(msg tea.Msg) (*conversationModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case generationDoneMsg:
		m.engine.Finish()
		m.refreshLog()
		return m, nil

	case spinner.TickMsg:
		if m.engine.State() == internal.StateGenerating {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *conversationModel) handleKey(msg tea.KeyMsg) (*conversationModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, navigate(internal.RouteMain)
	case "tab":
		if m.focus == focusChat {
			m.focus = focusViewer
			m.input.Blur()
		} else {
			m.focus = focusChat
			m.input.Focus()
		}
		return m, textinput.Blink
	case "ctrl+s":
		m.saveTranscript()
		return m, nil
	}

	if m.focus == focusViewer {
		switch msg.String() {
		case "+", "=":
			m.transform.ZoomIn()
		case "-":
			m.transform.ZoomOut()
		case "up":
			m.transform.Rotate(-5, 0)
		case "down":
			m.transform.Rotate(5, 0)
		case "left":
			m.transform.Rotate(0, -5)
		case "right":
			m.transform.Rotate(0, 5)
		case "r":
			m.transform.Reset()
		}
		return m, nil
	}

	if msg.String() == "enter" {
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *conversationModel) submit() (*conversationModel, tea.Cmd) {
	// Rejected submissions (blank input or a generation already in
	// flight) leave the input buffer untouched.
	if !m.engine.Submit(m.input.Value()) {
		return m, nil
	}

	m.input.Reset()
	m.refreshLog()

	delay := m.engine.Delay()
	return m, tea.Batch(
		m.spin.Tick,
		tea.Tick(delay, func(time.Time) tea.Msg { return generationDoneMsg{} }),
	)
}

func (m *conversationModel) saveTranscript() {
	id := m.session.Current()
	user := ""
	if id != nil {
		user = id.Name
	}

	exporter, err := export.NewExporter("md")
	if err != nil {
		m.notice = "Export failed."
		return
	}

	name := fmt.Sprintf("aicad-transcript-%s.%s", time.Now().Format("20060102-150405"), exporter.Extension())
	path := filepath.Join(m.exportDir, name)
	f, err := os.Create(path)
	if err != nil {
		m.notice = "Export failed."
		return
	}
	defer f.Close()

	t := internal.NewTranscript(user, m.engine.Messages())
	if err := exporter.Export(t, f); err != nil {
		m.notice = "Export failed."
		return
	}
	m.notice = "Saved " + name
}

func (m *conversationModel) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	chatWidth := m.width / 2
	logHeight := m.height - 8
	if logHeight < 3 {
		logHeight = 3
	}

	if !m.ready {
		m.log = viewport.New(chatWidth-4, logHeight)
		m.ready = true
	} else {
		m.log.Width = chatWidth - 4
		m.log.Height = logHeight
	}
	m.input.Width = chatWidth - 8
	m.refreshLog()
}

func (m *conversationModel) refreshLog() {
	var sb strings.Builder
	for _, msg := range m.engine.Messages() {
		label := m.styles.Assistant.Render("AiCAD")
		if msg.Role == internal.RoleUser {
			label = m.styles.User.Render("You")
		}
		sb.WriteString(label + "\n" + wrap(msg.Content, m.log.Width) + "\n\n")
	}
	m.log.SetContent(sb.String())
	if m.atBottom {
		m.log.GotoBottom()
		m.atBottom = false
	}
}

func (m *conversationModel) View() string {
	s := m.styles
	if m.width <= 0 {
		return "loading..."
	}

	viewerWidth := m.width - m.width/2 - 4
	cubeHeight := m.height - 10
	if cubeHeight < 5 {
		cubeHeight = 5
	}

	viewerTitle := s.Header.Render("3D CAD Viewer")
	if m.focus == focusViewer {
		viewerTitle += s.Accent.Render("  [active]")
	}
	cube := RenderCube(m.transform, viewerWidth-2, cubeHeight)
	info := s.Subtle.Render(fmt.Sprintf(
		"Vertices 1,248   Faces 2,496   Size 50x50x50mm   Zoom %.1fx", m.transform.Zoom))
	viewer := s.Pane.Width(viewerWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, viewerTitle, cube, info))

	chatTitle := s.Header.Render("AI Conversation")
	status := ""
	if m.engine.State() == internal.StateGenerating {
		status = m.spin.View() + s.Subtle.Render(" generating...")
	}
	chat := s.Pane.Width(m.width / 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, chatTitle, m.log.View(), status, m.input.View()))

	body := lipgloss.JoinHorizontal(lipgloss.Top, viewer, chat)

	help := s.Help.Render("enter send • tab toggle pane • +/- zoom • arrows rotate • r reset view • ctrl+s save • esc back")
	if m.notice != "" {
		help = s.Notice.Render(m.notice) + "  " + help
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// wrap soft-wraps text at width columns, breaking on spaces.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var sb strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		w := lipgloss.Width(word)
		if line > 0 && line+1+w > width {
			sb.WriteString("\n")
			line = 0
		} else if line > 0 {
			sb.WriteString(" ")
			line++
		}
		sb.WriteString(word)
		line += w
	}
	return sb.String()
}
