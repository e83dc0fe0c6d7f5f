// internal/app/features/login/handler.go
package login

import (
	"net/http"

	"github.com/collectam/collectam-web/internal/app/backend/authapi"
	uierrors "github.com/collectam/collectam-web/internal/app/features/errors"
	"github.com/collectam/collectam-web/internal/app/system/auth"
	"github.com/collectam/collectam-web/internal/app/system/inputval"
	"github.com/collectam/collectam-web/internal/app/system/normalize"
	"github.com/collectam/collectam-web/internal/app/system/ratelimit"
	"github.com/collectam/collectam-web/internal/app/system/roleroute"
	"github.com/collectam/collectam-web/internal/app/system/session"
	"github.com/collectam/collectam-web/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Auth    *auth.Service
	Flash   *session.FlashStore
	Limiter *ratelimit.LoginLimiter
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(authSvc *auth.Service, flash *session.FlashStore, limiter *ratelimit.LoginLimiter, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:    authSvc,
		Flash:   flash,
		Limiter: limiter,
		ErrLog:  errLog,
		Log:     logger,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error string
	Email string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/v2/login                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	vm := loginFormData{
		BaseVM: viewdata.NewBaseVM(r, "Sign in", "/", nil),
	}
	vm.Flashes = h.Flash.Pop(w, r)
	templates.Render(w, r, "login", vm)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /auth/v2/login                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "Invalid form data.", roleroute.LoginPath)
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")

	if allowed, reason := h.Limiter.Check(r, email); !allowed {
		h.Log.Warn("login throttled",
			zap.String("email", email),
			zap.String("ip", ratelimit.ClientIP(r)))
		h.renderFormWithError(w, r, reason, email)
		return
	}

	if msg := inputval.Check(inputval.LoginInput{Email: email, Password: password}); msg != "" {
		h.renderFormWithError(w, r, msg, email)
		return
	}

	resp := h.Auth.Login(r.Context(), w, authapi.LoginData{Email: email, Password: password})
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Login failed"
		}
		h.Log.Info("login rejected", zap.String("email", email), zap.String("reason", msg))
		h.renderFormWithError(w, r, msg, email)
		return
	}

	h.Limiter.ResetEmail(email)

	// Land directly on the role-specific dashboard; a response without
	// a user profile falls back to the generic entry point.
	dest := roleroute.DashboardPath
	if resp.Data != nil {
		dest = roleroute.RouteForRole(resp.Data.User.Role)
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	vm := loginFormData{
		BaseVM: viewdata.NewBaseVM(r, "Sign in", "/", nil),
		Error:  msg,
		Email:  email,
	}
	templates.Render(w, r, "login", vm)
}
