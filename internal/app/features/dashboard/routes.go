// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"

	// Template registration.
	_ "github.com/collectam/collectam-web/internal/app/features/dashboard/views"
)

// Routes wires the dashboard pages; mounted at /dashboard.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLanding)
	r.Get("/admin", h.ServeAdmin)
	r.Get("/org-admin", h.ServeOrgAdmin)
	r.Get("/collector", h.ServeCollector)
	r.Get("/user", h.ServeUser)
	return r
}
