// internal/app/features/dashboard/orgadmin.go
package dashboard

import (
	"html/template"
	"net/http"

	"github.com/collectam/collectam-web/internal/app/backend/dashboardapi"
	"github.com/collectam/collectam-web/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type orgAdminPageData struct {
	viewdata.BaseVM
	Alert     string
	KPIs      dashboardapi.OrgAdminKPIs
	Analytics template.JS
	Timeframe string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/org-admin                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeOrgAdmin(w http.ResponseWriter, r *http.Request) {
	token, user, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	vm := orgAdminPageData{
		BaseVM:    h.baseVM(r, "Organization overview", user),
		Timeframe: timeframe(r),
	}

	data, err := h.API.OrgAdmin(r.Context(), token)
	if err != nil {
		alert, done := h.handleFetchErr(w, r, err)
		if done {
			return
		}
		vm.Alert = alert
		templates.Render(w, r, "dashboard_org_admin", vm)
		return
	}
	vm.KPIs = dashboardapi.OrgAdminKPIsOf(data)

	analytics, err := h.API.OrgAnalytics(r.Context(), token, vm.Timeframe)
	if err != nil {
		alert, done := h.handleFetchErr(w, r, err)
		if done {
			return
		}
		vm.Alert = alert
	} else {
		vm.Analytics = template.JS(analytics.Data)
	}

	templates.Render(w, r, "dashboard_org_admin", vm)
}
