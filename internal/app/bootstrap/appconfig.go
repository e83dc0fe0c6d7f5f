// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP/HTTPS
// ports, TLS, logging level, request limits). AppConfig is everything
// specific to the Collectam web frontend: the session database, the
// cookie settings, and the two backend API base URLs the frontend talks
// to.
type AppConfig struct {
	// MongoDB connection configuration (web session records)
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session cookie configuration
	SessionKey    string // Secret key for signing the flash cookie (must be strong in production)
	SessionDomain string // Cookie domain (blank means current host)

	// Backend API endpoints. The auth service and the dashboard service
	// are deployed separately and configured independently.
	AuthAPIBaseURL      string // e.g., "http://localhost:5000"
	DashboardAPIBaseURL string // e.g., "http://localhost:8080"

	// Base URL this frontend is served from (used in links and logs).
	BaseURL string // e.g., "https://app.collectam.com" or "http://localhost:3000"
}
