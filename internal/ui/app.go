// Package ui implements the terminal interface: one bubbletea program
// with one screen per route. All navigation passes through the route
// guard, so protected screens are unreachable without a session.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zft5024/manus-aicad/internal"
)

// navigateMsg requests a screen change; the app model resolves it
// through the route guard before switching.
type navigateMsg struct {
	to internal.Route
}

func navigate(to internal.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

// App is the top-level tea.Model. It owns the session store and the
// current route; per-screen state lives in the screen models. The
// conversation screen (engine and view transform) is constructed on
// entry and discarded on exit, so conversations never outlive the
// screen.
type App struct {
	styles   Styles
	session  *internal.SessionStore
	feedback *internal.FeedbackStore
	cfg      internal.Config
	dataDir  string

	route        internal.Route
	landing      landingModel
	login        loginModel
	register     registerModel
	main         mainModel
	profile      profileModel
	conversation *conversationModel

	width  int
	height int
}

// NewApp assembles the TUI. The starting screen is always the landing
// page; a restored session changes what the guard permits, not where
// the app starts.
func NewApp(session *internal.SessionStore, feedback *internal.FeedbackStore, cfg internal.Config, dataDir string) *App {
	styles := NewStyles(cfg.Accent)
	return &App{
		styles:   styles,
		session:  session,
		feedback: feedback,
		cfg:      cfg,
		dataDir:  dataDir,
		route:    internal.RouteLanding,
		landing:  newLandingModel(styles, feedback),
		login:    newLoginModel(styles, session),
		register: newRegisterModel(styles, session),
		main:     newMainModel(styles, session, feedback),
		profile:  newProfileModel(styles, session),
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.conversation != nil {
			var cmd tea.Cmd
			a.conversation, cmd = a.conversation.Update(msg)
			return a, cmd
		}
		return a, nil

	case navigateMsg:
		return a.navigateTo(msg.to)
	}

	return a.updateActive(msg)
}

// navigateTo applies the route guard and switches screens. The guard is
// consulted on every navigation because the session can change between
// navigations.
func (a *App) navigateTo(target internal.Route) (tea.Model, tea.Cmd) {
	resolved := internal.ResolveRoute(target, a.session.Authenticated())
	internal.Logger().Debugw("navigate", "requested", target.String(), "resolved", resolved.String())

	// Leaving the conversation screen tears down its state.
	if a.route == internal.RouteConversation && resolved != internal.RouteConversation {
		a.conversation = nil
	}

	switch resolved {
	case internal.RouteConversation:
		engine := internal.NewEngine(internal.NewCannedGenerator(), a.cfg.GenerationDelay())
		a.conversation = newConversationModel(a.styles, a.session, engine, a.dataDir)
		if a.width > 0 {
			var cmd tea.Cmd
			a.conversation, cmd = a.conversation.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
			a.route = resolved
			return a, tea.Batch(cmd, textinput.Blink)
		}
	case internal.RouteMain:
		// Rebuild so the contact form picks up the current identity.
		a.main = newMainModel(a.styles, a.session, a.feedback)
	case internal.RouteProfile:
		a.profile = newProfileModel(a.styles, a.session)
	case internal.RouteLogin:
		a.login = newLoginModel(a.styles, a.session)
	case internal.RouteRegister:
		a.register = newRegisterModel(a.styles, a.session)
	}

	a.route = resolved
	return a, textinput.Blink
}

func (a *App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.route {
	case internal.RouteLanding:
		a.landing, cmd = a.landing.Update(msg)
	case internal.RouteLogin:
		a.login, cmd = a.login.Update(msg)
	case internal.RouteRegister:
		a.register, cmd = a.register.Update(msg)
	case internal.RouteMain:
		a.main, cmd = a.main.Update(msg)
	case internal.RouteProfile:
		a.profile, cmd = a.profile.Update(msg)
	case internal.RouteConversation:
		if a.conversation != nil {
			a.conversation, cmd = a.conversation.Update(msg)
		}
	}
	return a, cmd
}

func (a *App) View() string {
	var body string
	switch a.route {
	case internal.RouteLanding:
		body = a.landing.View()
	case internal.RouteLogin:
		body = a.login.View()
	case internal.RouteRegister:
		body = a.register.View()
	case internal.RouteMain:
		body = a.main.View()
	case internal.RouteProfile:
		body = a.profile.View()
	case internal.RouteConversation:
		if a.conversation != nil {
			return a.conversation.View()
		}
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

// Route exposes the current screen, mainly for tests.
func (a *App) Route() internal.Route {
	return a.route
}

// Run starts the TUI and blocks until it exits.
func Run(session *internal.SessionStore, feedback *internal.FeedbackStore, cfg internal.Config, dataDir string) error {
	app := NewApp(session, feedback, cfg, dataDir)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
