// Package roleroute maps a user's role claim to the dashboard that user
// lands on. The claim comes either from the cached profile in the web
// session or from the access token's embedded payload; both sources
// resolve through the same mapping.
package roleroute

import (
	"errors"

	"github.com/collectam/collectam-web/internal/domain/models"
	"github.com/golang-jwt/jwt/v5"
)

// Landing routes, one per recognized role.
const (
	LoginPath     = "/auth/v2/login"
	DashboardPath = "/dashboard"

	AdminDashboard     = "/dashboard/admin"
	OrgAdminDashboard  = "/dashboard/org-admin"
	CollectorDashboard = "/dashboard/collector"
	UserDashboard      = "/dashboard/user"
)

// ErrNoRoleClaim is returned when a token does not yield a usable role:
// malformed token, undecodable payload, or a payload without a role field.
var ErrNoRoleClaim = errors.New("roleroute: no role claim in token")

// RouteForRole returns the dashboard path for a role. The mapping is
// total: unrecognized or empty roles land on the generic entry point,
// which re-resolves the role from the session and redirects again.
func RouteForRole(role string) string {
	switch role {
	case models.RoleAdmin:
		return AdminDashboard
	case models.RoleOrgAdmin:
		return OrgAdminDashboard
	case models.RoleCollector:
		return CollectorDashboard
	case models.RoleUser:
		return UserDashboard
	default:
		return DashboardPath
	}
}

// tokenClaims is the subset of the access token payload we care about.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RoleFromToken extracts the role claim from an access token without
// verifying its signature — the backend is the authority on token
// validity; this is only used to pick a redirect target. Every failure
// mode (not a three-part token, bad base64, invalid JSON, missing role)
// collapses to ErrNoRoleClaim.
func RoleFromToken(token string) (string, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &tokenClaims{})
	if err != nil {
		return "", ErrNoRoleClaim
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.Role == "" {
		return "", ErrNoRoleClaim
	}
	return claims.Role, nil
}
