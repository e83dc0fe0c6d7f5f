// internal/app/features/register/routes.go
package register

import (
	"github.com/go-chi/chi/v5"

	// Template registration.
	_ "github.com/collectam/collectam-web/internal/app/features/register/views"
)

// RoutesV1 wires the legacy form; mounted at /auth/v1/register.
func RoutesV1(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRegisterV1)
	r.Post("/", h.HandleRegisterV1)
	return r
}

// RoutesV2 wires the current form; mounted at /auth/v2/register.
func RoutesV2(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRegisterV2)
	r.Post("/", h.HandleRegisterV2)
	return r
}
