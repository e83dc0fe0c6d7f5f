package ratelimit_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/collectam/collectam-web/internal/app/system/ratelimit"
)

func TestLimiter_AllowUpToLimit(t *testing.T) {
	l := ratelimit.New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("key") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("key") {
		t.Error("attempt past the limit should be blocked")
	}
	if !l.Allow("other-key") {
		t.Error("different key should have its own window")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := ratelimit.New(1, time.Minute)

	if !l.Allow("key") {
		t.Fatal("first attempt should be allowed")
	}
	if l.Allow("key") {
		t.Fatal("second attempt should be blocked")
	}
	l.Reset("key")
	if !l.Allow("key") {
		t.Error("attempt after reset should be allowed")
	}
}

func TestClientIP(t *testing.T) {
	t.Run("x-forwarded-for wins", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/v2/login", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		if got := ratelimit.ClientIP(req); got != "203.0.113.7" {
			t.Errorf("got %q, want %q", got, "203.0.113.7")
		}
	})

	t.Run("remote addr fallback strips port", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/v2/login", nil)
		req.RemoteAddr = "192.0.2.1:54321"
		if got := ratelimit.ClientIP(req); got != "192.0.2.1" {
			t.Errorf("got %q, want %q", got, "192.0.2.1")
		}
	})
}

func TestLoginLimiter_EmailWindowIsCaseInsensitive(t *testing.T) {
	ll := ratelimit.NewLoginLimiter()
	req := httptest.NewRequest("POST", "/auth/v2/login", nil)

	for i := 0; i < 5; i++ {
		variant := "User@Example.com"
		if i%2 == 0 {
			variant = "user@example.com"
		}
		allowed, _ := ll.Check(req, variant)
		if !allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	allowed, reason := ll.Check(req, "USER@EXAMPLE.COM")
	if allowed {
		t.Error("sixth attempt for the same account should be blocked")
	}
	if reason == "" {
		t.Error("blocked attempt should carry a user-facing reason")
	}
}
