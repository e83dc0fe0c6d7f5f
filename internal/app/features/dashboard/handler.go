// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/collectam/collectam-web/internal/app/system/roleroute"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard — role-resolving entry point                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeLanding resolves the session's role and redirects to that role's
// dashboard. A recognized role maps directly; a session whose profile
// carries an unrecognized role is sent to the collector dashboard — the
// most common account type — with a diagnostic log, rather than looping
// back through this entry point.
func (h *Handler) ServeLanding(w http.ResponseWriter, r *http.Request) {
	_, user, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	dest := roleroute.RouteForRole(user.Role)
	if dest == roleroute.DashboardPath {
		h.Log.Warn("session has unrecognized role, defaulting to collector dashboard",
			zap.String("user_id", user.ID),
			zap.String("role", user.Role))
		dest = roleroute.CollectorDashboard
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
