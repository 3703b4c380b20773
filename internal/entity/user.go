package entity

const (
	RoleAdmin      = "admin"
	RoleTechnicien = "technicien"
	RoleInvite     = "invite"
)

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Role   string `json:"role"`
}

// Account is the administration view of a user record, as returned by
// the /users endpoints. IsActive is false for suspended accounts and for
// registrations still awaiting approval.
type Account struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func RoleLabel(role string) string {
	switch role {
	case RoleAdmin:
		return "Administrateur"
	case RoleTechnicien:
		return "Technicien"
	case RoleInvite:
		return "Invité"
	}

	return role
}
