// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/collectam/collectam-web/internal/app/features/dashboard"
	errorsfeature "github.com/collectam/collectam-web/internal/app/features/errors"
	healthfeature "github.com/collectam/collectam-web/internal/app/features/health"
	loginfeature "github.com/collectam/collectam-web/internal/app/features/login"
	logoutfeature "github.com/collectam/collectam-web/internal/app/features/logout"
	registerfeature "github.com/collectam/collectam-web/internal/app/features/register"

	"github.com/collectam/collectam-web/internal/app/backend/authapi"
	"github.com/collectam/collectam-web/internal/app/backend/dashboardapi"
	"github.com/collectam/collectam-web/internal/app/system/auth"
	"github.com/collectam/collectam-web/internal/app/system/gate"
	"github.com/collectam/collectam-web/internal/app/system/ratelimit"
	"github.com/collectam/collectam-web/internal/app/system/roleroute"
	"github.com/collectam/collectam-web/internal/app/system/session"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// The Collectam frontend wires the two backend API clients, the
// dual-sink session store, the request gate, and mounts a feature
// router per page area: login, register (two form versions), logout,
// and the role-specific dashboards.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"

	sessions := session.New(deps.MongoDatabase, secure, appCfg.SessionDomain, logger)

	flash, err := session.NewFlashStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("flash store init failed", zap.Error(err))
		return nil, err
	}

	// Backend API clients; the two services are configured independently.
	authAPI := authapi.New(appCfg.AuthAPIBaseURL, logger)
	dashAPI := dashboardapi.New(appCfg.DashboardAPIBaseURL, logger)

	authSvc := auth.NewService(authAPI, sessions, logger)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// The request gate runs before routing: it sends anonymous visitors
	// to login and signed-in visitors off the auth pages.
	r.Use(gate.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Authentication
	loginHandler := loginfeature.NewHandler(authSvc, flash, ratelimit.NewLoginLimiter(), errLog, logger)
	r.Mount(roleroute.LoginPath, loginfeature.Routes(loginHandler))

	registerHandler := registerfeature.NewHandler(authSvc, errLog, logger)
	r.Mount("/auth/v1/register", registerfeature.RoutesV1(registerHandler))
	r.Mount("/auth/v2/register", registerfeature.RoutesV2(registerHandler))

	logoutHandler := logoutfeature.NewHandler(authSvc)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Role-based dashboards
	dashboardHandler := dashboardfeature.NewHandler(dashAPI, sessions, flash, errLog, logger)
	r.Mount(roleroute.DashboardPath, dashboardfeature.Routes(dashboardHandler))

	return r, nil
}
