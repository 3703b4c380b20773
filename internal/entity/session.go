package entity

// SessionState is the externally observed session aggregate. User is nil
// while anonymous; Permissions always matches User's role (or the invite
// default); Loading is true only during the initial rehydration window.
type SessionState struct {
	User        *User
	Permissions PermissionSet
	Loading     bool
}

func (s SessionState) IsAuthenticated() bool {
	return s.User != nil
}

// PendingRegistration is returned by register when the server holds the
// account for admin approval. It carries no credential.
type PendingRegistration struct {
	Message string
}
