package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zft5024/manus-aicad/internal"
	"github.com/zft5024/manus-aicad/testutil"
)

func newTestApp(t *testing.T) (*App, *internal.SessionStore) {
	t.Helper()

	db := testutil.CreateInMemoryDB(t)
	t.Cleanup(func() { _ = db.Close() })

	kv := internal.NewKVStore(db)
	session := internal.NewSessionStore(kv)
	feedback := internal.NewFeedbackStore(kv)

	app := NewApp(session, feedback, internal.DefaultConfig(), t.TempDir())
	return app, session
}

// send pushes a message through Update and returns the app model.
func send(t *testing.T, app *App, msg tea.Msg) *App {
	t.Helper()

	model, _ := app.Update(msg)
	updated, ok := model.(*App)
	if !ok {
		t.Fatalf("Update() returned %T, want *App", model)
	}
	return updated
}

func TestApp_StartsAtLanding(t *testing.T) {
	app, _ := newTestApp(t)

	if app.Route() != internal.RouteLanding {
		t.Errorf("initial route = %v, want landing", app.Route())
	}
}

func TestApp_GuardRedirectsConversationToLogin(t *testing.T) {
	app, _ := newTestApp(t)

	app = send(t, app, navigateMsg{to: internal.RouteConversation})

	if app.Route() != internal.RouteLogin {
		t.Errorf("route = %v, want login", app.Route())
	}
}

func TestApp_GuardRedirectsLoginToMainWhenAuthenticated(t *testing.T) {
	app, session := newTestApp(t)
	if err := session.Login(internal.NewIdentity("Ada", "ada@example.com")); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	app = send(t, app, navigateMsg{to: internal.RouteLogin})

	if app.Route() != internal.RouteMain {
		t.Errorf("route = %v, want main", app.Route())
	}
}

func TestApp_AuthenticatedReachesConversation(t *testing.T) {
	app, session := newTestApp(t)
	if err := session.Login(internal.NewIdentity("Ada", "ada@example.com")); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	app = send(t, app, navigateMsg{to: internal.RouteConversation})

	if app.Route() != internal.RouteConversation {
		t.Fatalf("route = %v, want conversation", app.Route())
	}
	if app.conversation == nil {
		t.Fatal("conversation screen was not constructed")
	}
	msgs := app.conversation.engine.Messages()
	if len(msgs) != 1 || msgs[0].Content != internal.Greeting {
		t.Errorf("fresh conversation log = %+v, want greeting only", msgs)
	}
}

func TestApp_LeavingConversationDiscardsState(t *testing.T) {
	app, session := newTestApp(t)
	if err := session.Login(internal.NewIdentity("Ada", "ada@example.com")); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	app = send(t, app, navigateMsg{to: internal.RouteConversation})
	app.conversation.engine.Submit("make a gear")
	app.conversation.engine.Finish()

	app = send(t, app, navigateMsg{to: internal.RouteMain})
	if app.conversation != nil {
		t.Fatal("conversation state survived leaving the screen")
	}

	// Returning starts a fresh conversation
	app = send(t, app, navigateMsg{to: internal.RouteConversation})
	if got := len(app.conversation.engine.Messages()); got != 1 {
		t.Errorf("returning conversation has %d messages, want 1", got)
	}
}

func TestApp_GuardReactsToLogout(t *testing.T) {
	app, session := newTestApp(t)
	if err := session.Login(internal.NewIdentity("Ada", "ada@example.com")); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	app = send(t, app, navigateMsg{to: internal.RouteProfile})
	if app.Route() != internal.RouteProfile {
		t.Fatalf("route = %v, want profile", app.Route())
	}

	if err := session.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	app = send(t, app, navigateMsg{to: internal.RouteProfile})
	if app.Route() != internal.RouteLogin {
		t.Errorf("route after logout = %v, want login", app.Route())
	}
}

func TestApp_PublicRoutesAlwaysReachable(t *testing.T) {
	app, _ := newTestApp(t)

	for _, route := range []internal.Route{internal.RouteRegister, internal.RouteLogin, internal.RouteLanding} {
		app = send(t, app, navigateMsg{to: route})
		if app.Route() != route {
			t.Errorf("route = %v, want %v", app.Route(), route)
		}
	}
}

func TestApp_WindowSizeReachesConversation(t *testing.T) {
	app, session := newTestApp(t)
	if err := session.Login(internal.NewIdentity("Ada", "ada@example.com")); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	app = send(t, app, tea.WindowSizeMsg{Width: 100, Height: 30})
	app = send(t, app, navigateMsg{to: internal.RouteConversation})

	view := app.View()
	if view == "" {
		t.Error("conversation view is empty after sizing")
	}
}

func TestApp_ViewRendersEachScreen(t *testing.T) {
	app, session := newTestApp(t)
	if err := session.Login(internal.NewIdentity("Ada", "ada@example.com")); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	for _, route := range []internal.Route{
		internal.RouteLanding,
		internal.RouteMain,
		internal.RouteProfile,
	} {
		app = send(t, app, navigateMsg{to: route})
		if app.View() == "" {
			t.Errorf("View() for %v is empty", route)
		}
	}
}
