package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
	"github.com/Radek987976/hyperbare-manager/internal/guard"
)

func state(role string, loading bool) entity.SessionState {
	s := entity.SessionState{
		Permissions: entity.PermissionsForRole(role),
		Loading:     loading,
	}

	if role != "" {
		s.User = &entity.User{ID: "u1", Role: role}
	}

	return s
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state entity.SessionState
		route guard.Route
		want  guard.Outcome
	}{
		{
			name:  "loading wins over everything",
			state: state(entity.RoleAdmin, true),
			route: guard.Route{},
			want:  guard.Loading,
		},
		{
			name:  "anonymous on protected route",
			state: state("", false),
			route: guard.Route{},
			want:  guard.RedirectLogin,
		},
		{
			name:  "anonymous on public route",
			state: state("", false),
			route: guard.Route{Public: true},
			want:  guard.Render,
		},
		{
			name:  "authenticated on protected route",
			state: state(entity.RoleTechnicien, false),
			route: guard.Route{},
			want:  guard.Render,
		},
		{
			name:  "authenticated on public route goes to landing",
			state: state(entity.RoleTechnicien, false),
			route: guard.Route{Public: true},
			want:  guard.RedirectLanding,
		},
		{
			name:  "admin on admin route",
			state: state(entity.RoleAdmin, false),
			route: guard.Route{AdminOnly: true},
			want:  guard.Render,
		},
		{
			name:  "technicien on admin route goes to landing, not forbidden",
			state: state(entity.RoleTechnicien, false),
			route: guard.Route{AdminOnly: true},
			want:  guard.RedirectLanding,
		},
		{
			name:  "invite on admin route goes to landing",
			state: state(entity.RoleInvite, false),
			route: guard.Route{AdminOnly: true},
			want:  guard.RedirectLanding,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, guard.Resolve(tt.state, tt.route))
		})
	}
}

// Fresh process: the guard holds on the placeholder while rehydration
// runs, then sends the anonymous visitor to the login view.
func TestResolve_FreshProcessSequence(t *testing.T) {
	t.Parallel()

	home := guard.Route{}

	require.Equal(t, guard.Loading, guard.Resolve(state("", true), home))
	require.Equal(t, guard.RedirectLogin, guard.Resolve(state("", false), home))
}

func TestOutcome_Err(t *testing.T) {
	t.Parallel()

	require.NoError(t, guard.Loading.Err())
	require.NoError(t, guard.Render.Err())
	require.ErrorIs(t, guard.RedirectLogin.Err(), entity.ErrNotAuthenticated)
	require.ErrorIs(t, guard.RedirectLanding.Err(), entity.ErrForbidden)
}

func TestResolve_AdminOnlyErrors(t *testing.T) {
	t.Parallel()

	route := guard.Route{AdminOnly: true}

	require.ErrorIs(t, guard.Resolve(state("", false), route).Err(), entity.ErrNotAuthenticated)
	require.ErrorIs(t, guard.Resolve(state(entity.RoleTechnicien, false), route).Err(), entity.ErrForbidden)
	require.ErrorIs(t, guard.Resolve(state(entity.RoleInvite, false), route).Err(), entity.ErrForbidden)
	require.NoError(t, guard.Resolve(state(entity.RoleAdmin, false), route).Err())
}
