// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/collectam/collectam-web/internal/app/system/session"
	"github.com/collectam/collectam-web/internal/app/system/timeouts"
	"github.com/collectam/collectam-web/internal/app/system/workers"
)

// sessionSweeper runs for the lifetime of the process; Shutdown stops it.
var sessionSweeper *workers.SessionCleanup

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("handler timeouts overridden from environment", zap.Int("count", n))
	}

	secure := coreCfg.Env == "prod"
	sessions := session.New(deps.MongoDatabase, secure, appCfg.SessionDomain, logger)
	sessionSweeper = workers.NewSessionCleanup(sessions, logger, time.Hour)
	sessionSweeper.Start()

	return nil
}
