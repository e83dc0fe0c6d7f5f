// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the Collectam web
// frontend. These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, auth_api_base_url, etc.
//   - Environment variables: COLLECTAM_MONGO_URI, COLLECTAM_AUTH_API_BASE_URL, etc.
//   - Command-line flags: --mongo_uri, --auth_api_base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "collectam_web", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Cookie signing key (must be strong in production)"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Backend APIs
	{Name: "auth_api_base_url", Default: "http://localhost:5000", Desc: "Base URL of the auth API"},
	{Name: "dashboard_api_base_url", Default: "http://localhost:8080", Desc: "Base URL of the dashboard API"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL this frontend is served from"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, COLLECTAM_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "COLLECTAM", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionDomain: appValues.String("session_domain"),

		AuthAPIBaseURL:      appValues.String("auth_api_base_url"),
		DashboardAPIBaseURL: appValues.String("dashboard_api_base_url"),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI and both backend base URLs are checked here so a
// misconfigured deployment fails at startup instead of at first login.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if err := validateBaseURL("auth_api_base_url", appCfg.AuthAPIBaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("dashboard_api_base_url", appCfg.DashboardAPIBaseURL); err != nil {
		return err
	}

	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must not be empty")
	}

	return nil
}

func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", name, raw)
	}
	return nil
}
