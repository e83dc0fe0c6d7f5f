// internal/app/features/login/routes.go
package login

import (
	"github.com/go-chi/chi/v5"

	// Template registration.
	_ "github.com/collectam/collectam-web/internal/app/features/login/views"
)

// Routes wires the login feature; mounted at /auth/v2/login.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Post("/", h.HandleLoginPost)
	return r
}
