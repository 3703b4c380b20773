package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

func TestPermissionsForRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role string
		want entity.PermissionSet
	}{
		{
			role: entity.RoleAdmin,
			want: entity.PermissionSet{
				CanCreate:      true,
				CanModify:      true,
				CanDelete:      true,
				CanExport:      true,
				CanManageUsers: true,
				Role:           entity.RoleAdmin,
			},
		},
		{
			role: entity.RoleTechnicien,
			want: entity.PermissionSet{
				CanCreate: true,
				CanModify: true,
				CanExport: true,
				Role:      entity.RoleTechnicien,
			},
		},
		{
			role: entity.RoleInvite,
			want: entity.PermissionSet{Role: entity.RoleInvite},
		},
		{
			role: "superviseur",
			want: entity.PermissionSet{Role: entity.RoleInvite},
		},
		{
			role: "",
			want: entity.PermissionSet{Role: entity.RoleInvite},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("role "+tt.role, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, entity.PermissionsForRole(tt.role))
		})
	}
}

func TestPermissionsForRole_Deterministic(t *testing.T) {
	t.Parallel()

	for _, role := range []string{entity.RoleAdmin, entity.RoleTechnicien, entity.RoleInvite, "autre"} {
		require.Equal(t, entity.PermissionsForRole(role), entity.PermissionsForRole(role))
	}
}

// Delete implies every other capability; any of create/modify/export
// implies create.
func TestPermissionsForRole_Monotonic(t *testing.T) {
	t.Parallel()

	for _, role := range []string{entity.RoleAdmin, entity.RoleTechnicien, entity.RoleInvite, "autre", ""} {
		p := entity.PermissionsForRole(role)

		if p.CanDelete {
			require.True(t, p.CanCreate)
			require.True(t, p.CanModify)
			require.True(t, p.CanExport)
			require.True(t, p.CanManageUsers)
		}

		if p.CanCreate || p.CanModify || p.CanExport {
			require.True(t, p.CanCreate)
		}
	}
}

func TestRoleLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Administrateur", entity.RoleLabel(entity.RoleAdmin))
	require.Equal(t, "Technicien", entity.RoleLabel(entity.RoleTechnicien))
	require.Equal(t, "Invité", entity.RoleLabel(entity.RoleInvite))
	require.Equal(t, "superviseur", entity.RoleLabel("superviseur"))
}
