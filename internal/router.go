package internal

// Route identifies a navigable screen.
type Route int

const (
	RouteLanding Route = iota
	RouteLogin
	RouteRegister
	RouteMain
	RouteConversation
	RouteProfile
)

// String returns the route's path-style name.
func (r Route) String() string {
	switch r {
	case RouteLanding:
		return "landing"
	case RouteLogin:
		return "login"
	case RouteRegister:
		return "register"
	case RouteMain:
		return "main"
	case RouteConversation:
		return "conversation"
	case RouteProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Protected reports whether the route requires an authenticated session.
func (r Route) Protected() bool {
	switch r {
	case RouteMain, RouteConversation, RouteProfile:
		return true
	default:
		return false
	}
}

// ResolveRoute is the route guard: given a requested destination and the
// presence of an identity, it returns the destination to actually render.
// Protected routes redirect to login when unauthenticated; the login and
// register screens redirect to main when a session already exists. The
// guard holds no state and must be consulted on every navigation.
func ResolveRoute(target Route, authenticated bool) Route {
	if target.Protected() && !authenticated {
		return RouteLogin
	}
	if (target == RouteLogin || target == RouteRegister) && authenticated {
		return RouteMain
	}
	return target
}
