// internal/app/backend/dashboardapi/kpi.go
package dashboardapi

import "encoding/json"

// Typed KPI views over the raw dashboard payload. The backend omits
// nested fields freely; the default policy is decided once here — every
// absent field decodes to its zero value, so views never null-check.

// Counter is a total/active pair used by several KPI groups.
type Counter struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// AdminKPIs is the global platform overview.
type AdminKPIs struct {
	Organizations struct {
		Total  int     `json:"total"`
		Active int     `json:"active"`
		Growth float64 `json:"growth"`
	} `json:"organizations"`
	Users       Counter `json:"users"`
	Collections struct {
		Total   int `json:"total"`
		Today   int `json:"today"`
		Pending int `json:"pending"`
	} `json:"collections"`
	Vehicles Counter `json:"vehicles"`
}

// OrgAdminKPIs is the per-organization overview.
type OrgAdminKPIs struct {
	Collectors  Counter `json:"collectors"`
	Vehicles    Counter `json:"vehicles"`
	Collections struct {
		Today   int `json:"today"`
		Pending int `json:"pending"`
	} `json:"collections"`
	Missions struct {
		Active    int `json:"active"`
		Completed int `json:"completed"`
	} `json:"missions"`
}

// CollectorStats is the collector's mission summary.
type CollectorStats struct {
	Missions struct {
		Today          []json.RawMessage `json:"today"`
		CompletedToday int               `json:"completedToday"`
		TotalCompleted int               `json:"totalCompleted"`
	} `json:"missions"`
}

// UserStats is the household user's collection summary.
type UserStats struct {
	Reports struct {
		Total     int `json:"total"`
		Pending   int `json:"pending"`
		Completed int `json:"completed"`
	} `json:"reports"`
	ScheduledCollections []json.RawMessage `json:"scheduledCollections"`
}

// adminEnvelope et al. unwrap the "kpis" level of the payload.
type adminEnvelope struct {
	KPIs AdminKPIs `json:"kpis"`
}

type orgAdminEnvelope struct {
	KPIs OrgAdminKPIs `json:"kpis"`
}

// AdminKPIsOf decodes the admin KPI block from a dashboard payload.
// A missing or undecodable payload yields all-zero KPIs.
func AdminKPIsOf(d *DashboardData) AdminKPIs {
	var env adminEnvelope
	decodeData(d, &env)
	return env.KPIs
}

// OrgAdminKPIsOf decodes the org-admin KPI block.
func OrgAdminKPIsOf(d *DashboardData) OrgAdminKPIs {
	var env orgAdminEnvelope
	decodeData(d, &env)
	return env.KPIs
}

// CollectorStatsOf decodes the collector mission summary.
func CollectorStatsOf(d *DashboardData) CollectorStats {
	var stats CollectorStats
	decodeData(d, &stats)
	return stats
}

// UserStatsOf decodes the household user summary.
func UserStatsOf(d *DashboardData) UserStats {
	var stats UserStats
	decodeData(d, &stats)
	return stats
}

func decodeData(d *DashboardData, out any) {
	if d == nil || len(d.Data) == 0 {
		return
	}
	// Best-effort: an unexpected shape leaves the zero values in place.
	_ = json.Unmarshal(d.Data, out)
}
