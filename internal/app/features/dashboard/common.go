// internal/app/features/dashboard/common.go
package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/collectam/collectam-web/internal/app/backend/dashboardapi"
	uierrors "github.com/collectam/collectam-web/internal/app/features/errors"
	"github.com/collectam/collectam-web/internal/app/system/roleroute"
	"github.com/collectam/collectam-web/internal/app/system/session"
	"github.com/collectam/collectam-web/internal/app/system/timeouts"
	"github.com/collectam/collectam-web/internal/app/system/viewdata"
	"github.com/collectam/collectam-web/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

type Handler struct {
	API      *dashboardapi.Client
	Sessions *session.Store
	Flash    *session.FlashStore
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(api *dashboardapi.Client, sessions *session.Store, flash *session.FlashStore, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:      api,
		Sessions: sessions,
		Flash:    flash,
		ErrLog:   errLog,
		Log:      logger,
	}
}

// requireSession yields the request's token and cached profile. With no
// session the browser is sent to the login page and ok is false. A
// session whose stored profile cannot be read is torn down rather than
// served a broken page.
func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request) (token string, user *models.UserProfile, ok bool) {
	token = h.Sessions.Token(r)
	if token == "" {
		http.Redirect(w, r, roleroute.LoginPath, http.StatusSeeOther)
		return "", nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	user, err := h.Sessions.User(ctx, r)
	if err != nil {
		h.Log.Warn("unreadable session, forcing re-login", zap.Error(err))
		h.forceLogout(w, r, "Please sign in again")
		return "", nil, false
	}
	return token, user, true
}

// handleFetchErr translates a backend fetch failure into the page-level
// outcome: a rejected token tears the session down and bounces to
// login; anything else comes back as an inline alert message for the
// view to render alongside empty data.
func (h *Handler) handleFetchErr(w http.ResponseWriter, r *http.Request, err error) (alert string, done bool) {
	if errors.Is(err, dashboardapi.ErrUnauthorized) {
		h.forceLogout(w, r, dashboardapi.ErrUnauthorized.Error())
		return "", true
	}
	h.Log.Error("dashboard fetch failed", zap.String("path", r.URL.Path), zap.Error(err))
	return "Unable to load dashboard data. Please try again later.", false
}

func (h *Handler) forceLogout(w http.ResponseWriter, r *http.Request, reason string) {
	h.Sessions.Clear(r.Context(), w, r)
	h.Flash.Add(w, r, "error", reason)
	http.Redirect(w, r, roleroute.LoginPath, http.StatusSeeOther)
}

// timeframe reads the analytics window from the query string. The value
// is opaque here; an absent one gets the client's default downstream.
func timeframe(r *http.Request) string {
	return query.Get(r, "timeframe")
}

func (h *Handler) baseVM(r *http.Request, title string, user *models.UserProfile) viewdata.BaseVM {
	vm := viewdata.NewBaseVM(r, title, roleroute.DashboardPath, user)
	return vm
}
