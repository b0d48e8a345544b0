package auth

// SessionView is the read side of the session the guard decides on.
type SessionView interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// RouteRequirement is what a route declares about who may open it.
type RouteRequirement struct {
	RequiresAuth  bool
	RequiresAdmin bool
}

// Outcome of a navigation attempt.
type Outcome int

const (
	Proceed Outcome = iota
	RedirectLogin
	RedirectHome
)

func (o Outcome) String() string {
	switch o {
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	default:
		return "proceed"
	}
}

// Decision is the guard's verdict. Target is empty when navigation proceeds.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Guard decides navigation from the session's derived flags. It never writes the session.
type Guard struct {
	session   SessionView
	loginPath string
	homePath  string
}

// NewGuard builds a guard redirecting to loginPath and homePath.
func NewGuard(session SessionView, loginPath, homePath string) *Guard {
	if loginPath == "" {
		loginPath = "/login"
	}
	if homePath == "" {
		homePath = "/"
	}
	return &Guard{session: session, loginPath: loginPath, homePath: homePath}
}

// Evaluate decides one navigation attempt. An authenticated non-admin hitting an admin
// route is sent home, not back to login.
func (g *Guard) Evaluate(req RouteRequirement) Decision {
	if req.RequiresAuth && !g.session.IsAuthenticated() {
		return Decision{Outcome: RedirectLogin, Target: g.loginPath}
	}
	if req.RequiresAdmin && !g.session.IsAdmin() {
		return Decision{Outcome: RedirectHome, Target: g.homePath}
	}
	return Decision{Outcome: Proceed}
}
