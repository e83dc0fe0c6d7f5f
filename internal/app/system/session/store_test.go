package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/collectam/collectam-web/internal/app/system/session"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// newDetachedStore builds a Store over a client that is never
// connected. Good enough for the cookie and parsing paths, which do no
// database I/O; record operations fail fast.
func newDetachedStore(t *testing.T) *session.Store {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond).
		SetConnectTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("mongo client init: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return session.New(client.Database("collectam_web_test"), false, "", zap.NewNop())
}

func TestToken(t *testing.T) {
	store := newDetachedStore(t)

	t.Run("from cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: "tok-123"})
		if got := store.Token(req); got != "tok-123" {
			t.Errorf("got %q, want %q", got, "tok-123")
		}
	})

	t.Run("from bearer header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.Header.Set("Authorization", "Bearer tok-456")
		if got := store.Token(req); got != "tok-456" {
			t.Errorf("got %q, want %q", got, "tok-456")
		}
	})

	t.Run("absent", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		if got := store.Token(req); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}

func TestIsAuthenticated(t *testing.T) {
	store := newDetachedStore(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	if store.IsAuthenticated(req) {
		t.Error("request without token should not be authenticated")
	}

	req.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: "tok"})
	if !store.IsAuthenticated(req) {
		t.Error("request with token cookie should be authenticated")
	}
}

func TestClear_ExpiresCookiesWithoutSession(t *testing.T) {
	store := newDetachedStore(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	store.Clear(context.Background(), rec, req)

	cookies := rec.Result().Cookies()
	expired := map[string]bool{}
	for _, c := range cookies {
		if c.MaxAge < 0 || c.Expires.Before(time.Now()) {
			expired[c.Name] = true
		}
	}
	if !expired[session.AccessTokenCookie] {
		t.Error("access token cookie not expired")
	}
	if !expired[session.RefreshTokenCookie] {
		t.Error("refresh token cookie not expired")
	}
}

func TestClear_ProceedsWhenRecordDeleteFails(t *testing.T) {
	store := newDetachedStore(t)

	// The record delete hits an unreachable database; the cookies must
	// be expired regardless.
	req := httptest.NewRequest("GET", "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: "tok"})
	rec := httptest.NewRecorder()

	store.Clear(context.Background(), rec, req)

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.AccessTokenCookie && c.MaxAge < 0 {
			found = true
		}
	}
	if !found {
		t.Error("access token cookie not expired after failed record delete")
	}
}

func TestUser_NoSession(t *testing.T) {
	store := newDetachedStore(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	if _, err := store.User(context.Background(), req); err != session.ErrNoSession {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestParseUserJSON(t *testing.T) {
	user, err := session.ParseUserJSON(`{"id":"u1","firstName":"Ada","lastName":"Admin","email":"a@b.c","role":"admin"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.Role != "admin" {
		t.Errorf("unexpected profile: %+v", user)
	}
	if user.FullName() != "Ada Admin" {
		t.Errorf("FullName: got %q", user.FullName())
	}
}

func TestParseUserJSON_Malformed(t *testing.T) {
	_, err := session.ParseUserJSON("{not json")
	if err == nil {
		t.Fatal("expected parse error for malformed profile")
	}
	if !strings.Contains(err.Error(), "malformed stored user profile") {
		t.Errorf("unexpected error text: %v", err)
	}
}
