// Package session projects AuthService results into the state shown by
// front-ends: who is signed in and whether a request is in flight.
package session

import "github.com/dmitrijs2005/schoolplatform/internal/client/models"

// Phase is the authentication phase of a client.
type Phase int

const (
	Anonymous Phase = iota
	Authenticating
	Authenticated
)

func (p Phase) String() string {
	switch p {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the projection. User is set only in the
// Authenticated phase.
type State struct {
	Phase   Phase
	User    *models.PublicUser
	Loading bool
}

// IsAuthenticated reports whether a user is signed in.
func (s State) IsAuthenticated() bool {
	return s.Phase == Authenticated && s.User != nil
}

// Restore builds the initial state from a stored session. A nil user yields
// Anonymous; otherwise the state is Authenticated without an Authenticating
// step.
func Restore(u *models.PublicUser) State {
	if u == nil {
		return State{Phase: Anonymous}
	}
	return State{Phase: Authenticated, User: clone(u)}
}

// Begin marks the start of a request. An anonymous client becomes
// Authenticating; a signed-in client stays signed in and is marked loading.
func Begin(s State) State {
	switch s.Phase {
	case Authenticated:
		s.Loading = true
		return s
	default:
		return State{Phase: Authenticating, Loading: true}
	}
}

// Succeed completes a login or registration.
func Succeed(s State, u *models.PublicUser) State {
	if u == nil {
		return Fail(s)
	}
	return State{Phase: Authenticated, User: clone(u)}
}

// Fail ends a request that did not succeed. Authenticating falls back to
// Anonymous; a signed-in client keeps its user.
func Fail(s State) State {
	if s.Phase == Authenticated {
		s.Loading = false
		return s
	}
	return State{Phase: Anonymous}
}

// Settle ends a request that leaves the user unchanged, e.g. a password change.
func Settle(s State) State {
	return Fail(s)
}

// LogOut always yields Anonymous.
func LogOut(State) State {
	return State{Phase: Anonymous}
}

// Replace swaps the signed-in user after a profile update. It has no effect
// unless the state is Authenticated.
func Replace(s State, u *models.PublicUser) State {
	if s.Phase != Authenticated || u == nil {
		return s
	}
	return State{Phase: Authenticated, User: clone(u)}
}

func clone(u *models.PublicUser) *models.PublicUser {
	c := *u
	return &c
}
