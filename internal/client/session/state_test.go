package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/schoolplatform/internal/client/models"
)

var (
	ann  = &models.PublicUser{ID: "u-1", Name: "Ann", Email: "ann@school.test"}
	ann2 = &models.PublicUser{ID: "u-1", Name: "Ann Smith", Email: "ann.smith@school.test"}
)

func TestTransitions(t *testing.T) {
	anonymous := State{Phase: Anonymous}
	authenticating := State{Phase: Authenticating, Loading: true}
	signedIn := State{Phase: Authenticated, User: ann}

	tests := []struct {
		name string
		got  State
		want State
	}{
		{"anonymous begin", Begin(anonymous), authenticating},
		{"authenticating succeed", Succeed(authenticating, ann), signedIn},
		{"authenticating fail", Fail(authenticating), anonymous},
		{"authenticated logout", LogOut(signedIn), anonymous},
		{"authenticated replace", Replace(signedIn, ann2), State{Phase: Authenticated, User: ann2}},
		{"authenticated begin keeps user", Begin(signedIn), State{Phase: Authenticated, User: ann, Loading: true}},
		{"authenticated fail keeps user", Fail(State{Phase: Authenticated, User: ann, Loading: true}), signedIn},
		{"settle keeps user", Settle(State{Phase: Authenticated, User: ann, Loading: true}), signedIn},
		{"replace ignored when anonymous", Replace(anonymous, ann2), anonymous},
		{"succeed without user fails", Succeed(authenticating, nil), anonymous},
		{"logout when anonymous", LogOut(anonymous), anonymous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestRestore(t *testing.T) {
	assert.Equal(t, State{Phase: Anonymous}, Restore(nil))

	s := Restore(ann)
	assert.Equal(t, Authenticated, s.Phase)
	assert.False(t, s.Loading)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, ann, s.User)
	assert.NotSame(t, ann, s.User)
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	signedIn := State{Phase: Authenticated, User: ann}

	_ = Begin(signedIn)
	_ = Replace(signedIn, ann2)

	assert.False(t, signedIn.Loading)
	assert.Equal(t, "Ann", signedIn.User.Name)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticating", Authenticating.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
