// internal/app/features/register/handler.go
package register

import (
	"net/http"
	"strings"

	"github.com/collectam/collectam-web/internal/app/backend/authapi"
	uierrors "github.com/collectam/collectam-web/internal/app/features/errors"
	"github.com/collectam/collectam-web/internal/app/system/auth"
	"github.com/collectam/collectam-web/internal/app/system/inputval"
	"github.com/collectam/collectam-web/internal/app/system/normalize"
	"github.com/collectam/collectam-web/internal/app/system/roleroute"
	"github.com/collectam/collectam-web/internal/app/system/sanitize"
	"github.com/collectam/collectam-web/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Registration is invitation-only: the form carries the invitation
// token issued by an organization admin. Two form versions are served
// (v1 is legacy, v2 is current); both post into the same flow.

type Handler struct {
	Auth   *auth.Service
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(authSvc *auth.Service, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:   authSvc,
		ErrLog: errLog,
		Log:    logger,
	}
}

type registerFormData struct {
	viewdata.BaseVM
	Error           string
	InvitationToken string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
}

// ServeRegisterV1 handles GET /auth/v1/register (legacy form).
func (h *Handler) ServeRegisterV1(w http.ResponseWriter, r *http.Request) {
	h.serveForm(w, r, "register_v1")
}

// ServeRegisterV2 handles GET /auth/v2/register.
func (h *Handler) ServeRegisterV2(w http.ResponseWriter, r *http.Request) {
	h.serveForm(w, r, "register_v2")
}

func (h *Handler) serveForm(w http.ResponseWriter, r *http.Request, tmpl string) {
	templates.Render(w, r, tmpl, registerFormData{
		BaseVM:          viewdata.NewBaseVM(r, "Create account", roleroute.LoginPath, nil),
		InvitationToken: query.Get(r, "invitation"),
	})
}

// HandleRegisterV1 handles POST /auth/v1/register.
func (h *Handler) HandleRegisterV1(w http.ResponseWriter, r *http.Request) {
	h.handlePost(w, r, "register_v1")
}

// HandleRegisterV2 handles POST /auth/v2/register.
func (h *Handler) HandleRegisterV2(w http.ResponseWriter, r *http.Request) {
	h.handlePost(w, r, "register_v2")
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request, tmpl string) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse register form failed", err, "Invalid form data.", roleroute.LoginPath)
		return
	}

	data := authapi.RegisterData{
		InvitationToken: strings.TrimSpace(r.FormValue("invitation_token")),
		FirstName:       sanitize.Field(r.FormValue("first_name")),
		LastName:        sanitize.Field(r.FormValue("last_name")),
		Email:           normalize.Email(r.FormValue("email")),
		Password:        r.FormValue("password"),
		Phone:           sanitize.Field(r.FormValue("phone")),
	}

	msg := inputval.Check(inputval.RegisterInput{
		InvitationToken: data.InvitationToken,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		Password:        data.Password,
		Phone:           data.Phone,
	})
	if msg != "" {
		h.renderFormWithError(w, r, tmpl, msg, data)
		return
	}

	resp := h.Auth.Register(r.Context(), w, data)
	if !resp.Success {
		reason := resp.Message
		if reason == "" {
			reason = "Registration failed"
		}
		h.Log.Info("registration rejected", zap.String("email", data.Email), zap.String("reason", reason))
		h.renderFormWithError(w, r, tmpl, reason, data)
		return
	}

	dest := roleroute.DashboardPath
	if resp.Data != nil {
		dest = roleroute.RouteForRole(resp.Data.User.Role)
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, tmpl, msg string, data authapi.RegisterData) {
	templates.Render(w, r, tmpl, registerFormData{
		BaseVM:          viewdata.NewBaseVM(r, "Create account", roleroute.LoginPath, nil),
		Error:           msg,
		InvitationToken: data.InvitationToken,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		Phone:           data.Phone,
	})
}
