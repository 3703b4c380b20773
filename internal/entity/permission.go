package entity

type PermissionSet struct {
	CanCreate      bool   `json:"can_create"`
	CanModify      bool   `json:"can_modify"`
	CanDelete      bool   `json:"can_delete"`
	CanExport      bool   `json:"can_export"`
	CanManageUsers bool   `json:"can_manage_users"`
	Role           string `json:"role"`
}

// PermissionsForRole is the only place where the role to capability
// mapping is encoded. A role the server invented after this build is
// treated as invite.
func PermissionsForRole(role string) PermissionSet {
	switch role {
	case RoleAdmin:
		return PermissionSet{
			CanCreate:      true,
			CanModify:      true,
			CanDelete:      true,
			CanExport:      true,
			CanManageUsers: true,
			Role:           role,
		}
	case RoleTechnicien:
		return PermissionSet{
			CanCreate: true,
			CanModify: true,
			CanExport: true,
			Role:      role,
		}
	}

	return PermissionSet{Role: RoleInvite}
}
