package dashboardapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/collectam/collectam-web/internal/app/backend/dashboardapi"
	"go.uber.org/zap"
)

func TestDashboard_SendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "role": "collector", "data": {"missions": {"completedToday": 3}}}`))
	}))
	defer srv.Close()

	client := dashboardapi.New(srv.URL, zap.NewNop())
	data, err := client.Dashboard(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization: got %q, want %q", gotAuth, "Bearer tok-1")
	}
	if gotPath != "/api/dashboard" {
		t.Errorf("path: got %q, want %q", gotPath, "/api/dashboard")
	}
	if data.Role != "collector" {
		t.Errorf("role: got %q", data.Role)
	}

	stats := dashboardapi.CollectorStatsOf(data)
	if stats.Missions.CompletedToday != 3 {
		t.Errorf("completedToday: got %d, want 3", stats.Missions.CompletedToday)
	}
}

func TestFetch_UnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := dashboardapi.New(srv.URL, zap.NewNop())
	_, err := client.Admin(context.Background(), "stale-token")
	if !errors.Is(err, dashboardapi.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestFetch_NonOKStatusMapsToHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := dashboardapi.New(srv.URL, zap.NewNop())
	_, err := client.OrgAdmin(context.Background(), "tok")

	var httpErr *dashboardapi.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", httpErr.Status, http.StatusForbidden)
	}
}

func TestAnalytics_DefaultTimeframe(t *testing.T) {
	var gotTimeframe string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTimeframe = r.URL.Query().Get("timeframe")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {}}`))
	}))
	defer srv.Close()

	client := dashboardapi.New(srv.URL, zap.NewNop())
	if _, err := client.GlobalAnalytics(context.Background(), "tok", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTimeframe != dashboardapi.DefaultTimeframe {
		t.Errorf("timeframe: got %q, want %q", gotTimeframe, dashboardapi.DefaultTimeframe)
	}
}

func TestAnalytics_TimeframePassedThrough(t *testing.T) {
	var gotPath, gotTimeframe string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTimeframe = r.URL.Query().Get("timeframe")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {}}`))
	}))
	defer srv.Close()

	client := dashboardapi.New(srv.URL, zap.NewNop())
	if _, err := client.PersonalAnalytics(context.Background(), "tok", "90d"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/dashboard/analytics/personal" {
		t.Errorf("path: got %q", gotPath)
	}
	if gotTimeframe != "90d" {
		t.Errorf("timeframe: got %q, want %q", gotTimeframe, "90d")
	}
}

func TestKPIDecode_MissingFieldsDefaultToZero(t *testing.T) {
	data := &dashboardapi.DashboardData{
		Success: true,
		Data:    []byte(`{"kpis": {"organizations": {"total": 12}}}`),
	}

	kpis := dashboardapi.AdminKPIsOf(data)
	if kpis.Organizations.Total != 12 {
		t.Errorf("organizations.total: got %d, want 12", kpis.Organizations.Total)
	}
	if kpis.Users.Total != 0 || kpis.Collections.Pending != 0 || kpis.Vehicles.Active != 0 {
		t.Errorf("absent fields should decode to zero: %+v", kpis)
	}
}

func TestKPIDecode_NilPayload(t *testing.T) {
	kpis := dashboardapi.OrgAdminKPIsOf(nil)
	if kpis.Collectors.Total != 0 || kpis.Missions.Active != 0 {
		t.Errorf("nil payload should yield zero KPIs: %+v", kpis)
	}

	stats := dashboardapi.UserStatsOf(&dashboardapi.DashboardData{Success: true})
	if stats.Reports.Total != 0 || len(stats.ScheduledCollections) != 0 {
		t.Errorf("empty payload should yield zero stats: %+v", stats)
	}
}
