// Package dashboardapi is the authenticated HTTP client for the
// Collectam backend's dashboard endpoints (/api/dashboard/*).
//
// Error contract: a 401 yields ErrUnauthorized — the calling handler
// must clear the session and send the browser to the login entry point.
// Any other non-2xx yields *HTTPError. Transport failures come back as
// plain errors for the view to render inline.
package dashboardapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/collectam/collectam-web/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// DefaultTimeframe is appended to analytics calls when the caller does
// not supply one. The value is forwarded opaquely; the backend owns its
// format.
const DefaultTimeframe = "30d"

// ErrUnauthorized signals a 401 from the backend: the session is no
// longer valid and must be torn down by the caller.
var ErrUnauthorized = errors.New("Session expired")

// HTTPError is a non-2xx, non-401 backend response.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("dashboard API: HTTP error, status %d", e.Status)
}

// DashboardData is the backend's dashboard envelope. Data stays raw;
// typed KPI decoding happens in kpi.go with one central default policy.
type DashboardData struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Role      string          `json:"role"`
	Timestamp string          `json:"timestamp"`
}

// AnalyticsData is the backend's analytics envelope.
type AnalyticsData struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// Client fetches dashboard payloads with the caller's bearer token.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

// New constructs a dashboard API client with a bounded request timeout.
func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeouts.Medium()},
		Log:     logger,
	}
}

// Fetch issues an authenticated GET and decodes the response into out.
// An empty token still sends the request; the backend rejects it with
// the 401 this client maps to ErrUnauthorized.
func (c *Client) Fetch(ctx context.Context, token, endpoint string, out any, headers map[string]string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("dashboard API: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("dashboard API: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.Log.Info("dashboard API rejected token", zap.String("endpoint", endpoint))
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &HTTPError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("dashboard API: decode response: %w", err)
	}
	return nil
}

// Dashboard fetches the role-resolved payload for the current user.
func (c *Client) Dashboard(ctx context.Context, token string) (*DashboardData, error) {
	return c.dashboard(ctx, token, "/api/dashboard")
}

// Admin fetches the global platform overview.
func (c *Client) Admin(ctx context.Context, token string) (*DashboardData, error) {
	return c.dashboard(ctx, token, "/api/dashboard/admin")
}

// OrgAdmin fetches the organization overview.
func (c *Client) OrgAdmin(ctx context.Context, token string) (*DashboardData, error) {
	return c.dashboard(ctx, token, "/api/dashboard/org-admin")
}

// Collector fetches the collector's mission view.
func (c *Client) Collector(ctx context.Context, token string) (*DashboardData, error) {
	return c.dashboard(ctx, token, "/api/dashboard/collector")
}

// User fetches the household user's collection view.
func (c *Client) User(ctx context.Context, token string) (*DashboardData, error) {
	return c.dashboard(ctx, token, "/api/dashboard/user")
}

func (c *Client) dashboard(ctx context.Context, token, endpoint string) (*DashboardData, error) {
	var out DashboardData
	if err := c.Fetch(ctx, token, endpoint, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// GlobalAnalytics fetches platform-wide analytics (admin only).
func (c *Client) GlobalAnalytics(ctx context.Context, token, timeframe string) (*AnalyticsData, error) {
	return c.analytics(ctx, token, "/api/dashboard/analytics/global", timeframe)
}

// OrgAnalytics fetches organization analytics.
func (c *Client) OrgAnalytics(ctx context.Context, token, timeframe string) (*AnalyticsData, error) {
	return c.analytics(ctx, token, "/api/dashboard/analytics/org", timeframe)
}

// PersonalAnalytics fetches the signed-in user's own analytics.
func (c *Client) PersonalAnalytics(ctx context.Context, token, timeframe string) (*AnalyticsData, error) {
	return c.analytics(ctx, token, "/api/dashboard/analytics/personal", timeframe)
}

func (c *Client) analytics(ctx context.Context, token, endpoint, timeframe string) (*AnalyticsData, error) {
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}
	var out AnalyticsData
	err := c.Fetch(ctx, token, endpoint+"?timeframe="+url.QueryEscape(timeframe), &out, nil)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
