// internal/domain/models/user.go
package models

// Roles recognized by the platform. Anything else routes to the
// generic dashboard entry point.
const (
	RoleAdmin     = "admin"
	RoleOrgAdmin  = "org_admin"
	RoleCollector = "collector"
	RoleUser      = "user"
)

// UserProfile is the snapshot of the signed-in user returned by the
// backend at login time. It is cached in the web session and not
// refreshed until the next login.
type UserProfile struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Role           string `json:"role"` // admin | org_admin | collector | user
	OrganizationID string `json:"organizationId,omitempty"`
}

// FullName joins first and last name for display.
func (u UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// IsAdmin reports whether the profile carries a platform-admin or
// organization-admin role.
func (u UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleOrgAdmin
}
