// internal/app/features/dashboard/user.go
package dashboard

import (
	"html/template"
	"net/http"

	"github.com/collectam/collectam-web/internal/app/backend/dashboardapi"
	"github.com/collectam/collectam-web/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type userPageData struct {
	viewdata.BaseVM
	Alert     string
	Stats     dashboardapi.UserStats
	Analytics template.JS
	Timeframe string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/user                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeUser(w http.ResponseWriter, r *http.Request) {
	token, user, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	vm := userPageData{
		BaseVM:    h.baseVM(r, "My collections", user),
		Timeframe: timeframe(r),
	}

	data, err := h.API.User(r.Context(), token)
	if err != nil {
		alert, done := h.handleFetchErr(w, r, err)
		if done {
			return
		}
		vm.Alert = alert
		templates.Render(w, r, "dashboard_user", vm)
		return
	}
	vm.Stats = dashboardapi.UserStatsOf(data)

	analytics, err := h.API.PersonalAnalytics(r.Context(), token, vm.Timeframe)
	if err != nil {
		alert, done := h.handleFetchErr(w, r, err)
		if done {
			return
		}
		vm.Alert = alert
	} else {
		vm.Analytics = template.JS(analytics.Data)
	}

	templates.Render(w, r, "dashboard_user", vm)
}
