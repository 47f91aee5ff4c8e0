package model

// User represents an account in the credential store.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Roles.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// AdminUsername is the seed account. It is protected at the store level and
// can never be deleted, independent of the caller's role.
const AdminUsername = "admin"

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleViewer
}

// Session is the authenticated identity passed into every ledger, credential
// and audit operation. There is no ambient current user; callers obtain a
// Session from Authenticate and hand it to each call explicitly.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
