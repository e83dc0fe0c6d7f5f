// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/collectam/collectam-web/internal/app/system/auth"
)

type Handler struct {
	Auth *auth.Service
}

func NewHandler(authSvc *auth.Service) *Handler {
	return &Handler{Auth: authSvc}
}

// ServeLogout clears the session on both sides (cookies and the
// persisted session record) and sends the browser back to the login
// page. Logging out when no session exists is not an error.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(w, r)
}
