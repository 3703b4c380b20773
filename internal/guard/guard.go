package guard

import (
	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

// Route carries a view's access requirements. Public routes (login,
// register) are the ones an anonymous user may see; AdminOnly routes are
// hidden from non-admins by sending them to the landing view rather than
// a forbidden page.
type Route struct {
	Public    bool
	AdminOnly bool
}

type Outcome int

const (
	// Loading: rehydration has not finished, render a neutral placeholder.
	Loading Outcome = iota
	Render
	RedirectLogin
	RedirectLanding
)

func (o Outcome) String() string {
	switch o {
	case Loading:
		return "loading"
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectLanding:
		return "redirect-landing"
	}

	return "unknown"
}

// Err maps a redirect outcome onto the matching sentinel so callers
// without a router can fail with a typed error. Loading and Render map
// to nil.
func (o Outcome) Err() error {
	switch o {
	case RedirectLogin:
		return entity.ErrNotAuthenticated
	case RedirectLanding:
		return entity.ErrForbidden
	}

	return nil
}

// Resolve maps (session state, route requirements) to one outcome. It
// reads only the snapshot and never performs I/O.
func Resolve(state entity.SessionState, route Route) Outcome {
	if state.Loading {
		return Loading
	}

	if route.Public {
		if state.IsAuthenticated() {
			return RedirectLanding
		}

		return Render
	}

	if !state.IsAuthenticated() {
		return RedirectLogin
	}

	if route.AdminOnly && state.User.Role != entity.RoleAdmin {
		return RedirectLanding
	}

	return Render
}
