// internal/app/system/workers/sessioncleanup.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/collectam/collectam-web/internal/app/system/session"
	"github.com/collectam/collectam-web/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// SessionCleanup is a background worker that sweeps expired web session
// records. The TTL index removes them eventually; the sweep keeps the
// collection tight and makes expiry visible in the logs.
type SessionCleanup struct {
	sessions *session.Store
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewSessionCleanup creates a session cleanup worker that runs every
// interval.
func NewSessionCleanup(sessions *session.Store, logger *zap.Logger, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		sessions: sessions,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background cleanup loop.
func (w *SessionCleanup) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("session cleanup worker started",
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *SessionCleanup) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("session cleanup worker stopped")
}

func (w *SessionCleanup) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

func (w *SessionCleanup) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Medium())
	defer cancel()

	count, err := w.sessions.DeleteExpired(ctx)
	if err != nil {
		w.log.Error("expired session sweep failed", zap.Error(err))
		return
	}
	if count > 0 {
		w.log.Info("expired sessions removed", zap.Int64("count", count))
	}
}
