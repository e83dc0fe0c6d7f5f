// internal/app/features/dashboard/collector.go
package dashboard

import (
	"html/template"
	"net/http"

	"github.com/collectam/collectam-web/internal/app/backend/dashboardapi"
	"github.com/collectam/collectam-web/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type collectorPageData struct {
	viewdata.BaseVM
	Alert     string
	Stats     dashboardapi.CollectorStats
	Analytics template.JS
	Timeframe string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/collector                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCollector(w http.ResponseWriter, r *http.Request) {
	token, user, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	vm := collectorPageData{
		BaseVM:    h.baseVM(r, "My missions", user),
		Timeframe: timeframe(r),
	}

	data, err := h.API.Collector(r.Context(), token)
	if err != nil {
		alert, done := h.handleFetchErr(w, r, err)
		if done {
			return
		}
		vm.Alert = alert
		templates.Render(w, r, "dashboard_collector", vm)
		return
	}
	vm.Stats = dashboardapi.CollectorStatsOf(data)

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

	templates.Render(w, r, "dashboard_collector", vm)
}
