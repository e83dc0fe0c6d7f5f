package roleroute_test

import (
	"errors"
	"testing"

	"github.com/collectam/collectam-web/internal/app/system/roleroute"
	"github.com/collectam/collectam-web/internal/testutil"
)

func TestRouteForRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"admin", "/dashboard/admin"},
		{"org_admin", "/dashboard/org-admin"},
		{"collector", "/dashboard/collector"},
		{"user", "/dashboard/user"},
		{"superuser", "/dashboard"},
		{"ADMIN", "/dashboard"}, // roles are case-sensitive
		{"", "/dashboard"},
	}

	for _, tt := range tests {
		t.Run("role "+tt.role, func(t *testing.T) {
			if got := roleroute.RouteForRole(tt.role); got != tt.want {
				t.Errorf("RouteForRole(%q): got %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestRoleFromToken(t *testing.T) {
	token := testutil.TokenWithRole(t, "collector")

	role, err := roleroute.RoleFromToken(token)
	if err != nil {
		t.Fatalf("RoleFromToken: unexpected error: %v", err)
	}
	if role != "collector" {
		t.Errorf("role: got %q, want %q", role, "collector")
	}
}

func TestRoleFromToken_NoRoleClaim(t *testing.T) {
	token := testutil.TokenWithoutRole(t)

	_, err := roleroute.RoleFromToken(token)
	if !errors.Is(err, roleroute.ErrNoRoleClaim) {
		t.Errorf("expected ErrNoRoleClaim, got %v", err)
	}
}

func TestRoleFromToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not a token", "not-a-token"},
		{"two segments", "abc.def"},
		{"bad base64 payload", "aaa.!!!.ccc"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := roleroute.RoleFromToken(tt.token); !errors.Is(err, roleroute.ErrNoRoleClaim) {
				t.Errorf("expected ErrNoRoleClaim, got %v", err)
			}
		})
	}
}
