package main

import (
	"context"
	"time"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/handlers"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
)

const sessionCleanerTimeout = 30 * time.Second

// runSessionCleaner purges expired refresh sessions every interval until
// ctx is done. Stores that expire entries themselves are skipped.
func runSessionCleaner(ctx context.Context, store repositories.SessionStore, interval time.Duration, logger handlers.Logger) {
	sweeper, ok := store.(repositories.SessionSweeper)
	if !ok || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run := func() {
		runCtx, cancel := context.WithTimeout(ctx, sessionCleanerTimeout)
		defer cancel()

		cleared, err := sweeper.DeleteExpiredSessions(runCtx, time.Now())
		if err != nil {
			if logger != nil {
				logger.Errorf("session cleaner: failed to clear expired sessions: %v", err)
			}
			return
		}
		if cleared > 0 && logger != nil {
			logger.Infof("session cleaner: cleared %d expired sessions", cleared)
		}
	}

	run()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
