// internal/app/features/dashboard/admin.go
package dashboard

import (
	"html/template"
	"net/http"

	"github.com/collectam/collectam-web/internal/app/backend/dashboardapi"
	"github.com/collectam/collectam-web/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type adminPageData struct {
	viewdata.BaseVM
	Alert     string
	KPIs      dashboardapi.AdminKPIs
	Analytics template.JS
	Timeframe string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/admin                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	token, user, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	vm := adminPageData{
		BaseVM:    h.baseVM(r, "Platform overview", user),
		Timeframe: timeframe(r),
	}

	data, err := h.API.Admin(r.Context(), token)
	if err != nil {
		alert, done := h.handleFetchErr(w, r, err)
		if done {
			return
		}
		vm.Alert = alert
		templates.Render(w, r, "dashboard_admin", vm)
		return
	}
	vm.KPIs = dashboardapi.AdminKPIsOf(data)

	// Analytics failures degrade the charts only; the KPI tiles above
	// already rendered from a successful fetch.
	analytics, err := h.API.GlobalAnalytics(r.Context(), token, vm.Timeframe)
	if err != nil {
		alert, done := h.handleFetchErr(w, r, err)
		if done {
			return
		}
		vm.Alert = alert
	} else {
		vm.Analytics = template.JS(analytics.Data)
	}

	templates.Render(w, r, "dashboard_admin", vm)
}
