package register_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/collectam/collectam-web/internal/app/backend/authapi"
	uierrors "github.com/collectam/collectam-web/internal/app/features/errors"
	"github.com/collectam/collectam-web/internal/app/features/register"
	"github.com/collectam/collectam-web/internal/app/system/auth"
	"github.com/collectam/collectam-web/internal/app/system/session"
	"github.com/collectam/collectam-web/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, backend *httptest.Server) *register.Handler {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond).
		SetConnectTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("mongo client init: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	logger := zap.NewNop()
	sessions := session.New(client.Database("collectam_web_test"), false, "", logger)
	authSvc := auth.NewService(authapi.New(backend.URL, logger), sessions, logger)
	return register.NewHandler(authSvc, uierrors.NewErrorLogger(logger), logger)
}

func validForm() url.Values {
	return url.Values{
		"invitation_token": {"inv-1"},
		"first_name":       {"Carl"},
		"last_name":        {"Collector"},
		"email":            {"carl@example.com"},
		"password":         {"secret123"},
		"phone":            {"555-0100"},
	}
}

func TestHandleRegister_SuccessRedirects(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "Account created"}`))
	}))
	defer backend.Close()

	handler := newTestHandler(t, backend)

	req := testutil.NewFormRequest("POST", "/auth/v2/register", validForm())
	rec := testutil.NewRecorder()

	handler.HandleRegisterV2(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusSeeOther)
	rec.AssertRedirect(t, "/dashboard")
}

func TestHandleRegister_SanitizesFreeTextFields(t *testing.T) {
	var gotBody authapi.RegisterData
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer backend.Close()

	handler := newTestHandler(t, backend)

	form := validForm()
	form.Set("first_name", `<script>alert(1)</script>Carl`)
	form.Set("last_name", "<b>Collector</b>")

	req := testutil.NewFormRequest("POST", "/auth/v1/register", form)
	handler.HandleRegisterV1(httptest.NewRecorder(), req)

	if gotBody.FirstName != "Carl" {
		t.Errorf("firstName: got %q, want %q", gotBody.FirstName, "Carl")
	}
	if gotBody.LastName != "Collector" {
		t.Errorf("lastName: got %q, want %q", gotBody.LastName, "Collector")
	}
}

func TestHandleRegister_ValidationRejectsBeforeBackend(t *testing.T) {
	backendCalled := false
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
	}))
	defer backend.Close()

	handler := newTestHandler(t, backend)

	form := validForm()
	form.Set("invitation_token", "")

	req := testutil.NewFormRequest("POST", "/auth/v2/register", form)
	rec := httptest.NewRecorder()

	// Handler re-renders the form, which panics without an initialized
	// template engine.
	func() {
		defer func() { recover() }()
		handler.HandleRegisterV2(rec, req)
	}()

	if backendCalled {
		t.Error("backend must not be called without an invitation token")
	}
}

func TestHandleRegister_BackendRejection(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success": false, "message": "Email already registered"}`))
	}))
	defer backend.Close()

	handler := newTestHandler(t, backend)

	req := testutil.NewFormRequest("POST", "/auth/v2/register", validForm())
	rec := httptest.NewRecorder()

	func() {
		defer func() { recover() }()
		handler.HandleRegisterV2(rec, req)
	}()

	for _, c := range rec.Result().Cookies() {
		if c.Name == session.AccessTokenCookie && c.Value != "" {
			t.Error("token cookie must not be set on rejected registration")
		}
	}
}
