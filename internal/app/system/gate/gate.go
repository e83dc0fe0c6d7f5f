// Package gate implements the request gate that runs before any page
// handler: it decides, per navigation, whether the request passes
// through or is redirected based on token presence and whether the
// target route is public.
package gate

import (
	"net/http"
	"strings"

	"github.com/collectam/collectam-web/internal/app/system/roleroute"
	"go.uber.org/zap"
)

// publicRoutes is the fixed allowlist of routes reachable without a
// session. Matching is prefix-based.
var publicRoutes = []string{
	"/auth/v2/login",
	"/auth/v1/register",
	"/auth/v2/register",
}

// skipPrefixes are infrastructure routes the gate never intercepts.
var skipPrefixes = []string{
	"/health",
	"/static/",
}

// Action is the outcome of a gate decision.
type Action int

const (
	// Pass lets the request through unmodified.
	Pass Action = iota
	// Redirect sends the browser to Decision.Target.
	Redirect
)

// Decision is the gate's verdict for one request.
type Decision struct {
	Action Action
	Target string
}

// Decide is the pure decision function: a total mapping from
// (path, token) to exactly one outcome. It never fails; a token whose
// role claim cannot be decoded degrades to the generic dashboard.
func Decide(path, token string) Decision {
	// Root always goes to login, even with a valid session.
	if path == "/" {
		return Decision{Redirect, roleroute.LoginPath}
	}

	public := isPublicRoute(path)

	if token == "" && !public {
		return Decision{Redirect, roleroute.LoginPath}
	}

	if token != "" && public {
		role, err := roleroute.RoleFromToken(token)
		if err != nil {
			return Decision{Redirect, roleroute.DashboardPath}
		}
		return Decision{Redirect, roleroute.RouteForRole(role)}
	}

	return Decision{Action: Pass}
}

func isPublicRoute(path string) bool {
	for _, route := range publicRoutes {
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}

// TokenFromRequest reads the access token from the accessToken cookie,
// falling back to the Authorization header with the "Bearer " prefix
// stripped. Empty string means no token.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie("accessToken"); err == nil && c.Value != "" {
		return c.Value
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// Middleware applies the gate to every request on the router it wraps.
func Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			for _, p := range skipPrefixes {
				if strings.HasPrefix(path, p) {
					next.ServeHTTP(w, r)
					return
				}
			}

			d := Decide(path, TokenFromRequest(r))
			if d.Action == Redirect {
				logger.Debug("gate redirect",
					zap.String("path", path),
					zap.String("target", d.Target))
				http.Redirect(w, r, d.Target, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
