// Package main provides the institute site server entry point.
package main

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/itech-institute/itech-site-go/internal/config"
	"github.com/itech-institute/itech-site-go/internal/logger"
	"github.com/itech-institute/itech-site-go/internal/storage"
	"github.com/itech-institute/itech-site-go/internal/web"
)

const (
	chatHistoryPurgeInterval = 12 * time.Hour
	staffSessionSweepPeriod  = 15 * time.Minute
)

// startJobs launches the periodic maintenance goroutines. The returned
// channel closes once all jobs have observed context cancellation.
func startJobs(ctx context.Context, repo *storage.Repository, staffSessions *web.StaffSessionStore, cfg *config.Config, log *logger.Logger) <-chan struct{} {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		purgeChatHistory(ctx, repo, cfg.Chat.HistoryRetention, log)
		return nil
	})
	g.Go(func() error {
		sweepStaffSessions(ctx, staffSessions, log)
		return nil
	})

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()
	return done
}

// purgeChatHistory periodically deletes chat turns older than the
// retention window.
func purgeChatHistory(ctx context.Context, repo *storage.Repository, retention time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(chatHistoryPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-retention)
			deleted, err := repo.PurgeChatHistoryBefore(ctx, cutoff)
			if err != nil {
				log.WithError(err).Error("Failed to purge chat history")
				continue
			}
			if deleted > 0 {
				log.WithField("deleted", deleted).Info("Chat history purged")
			}
		}
	}
}

// sweepStaffSessions periodically drops expired staff sessions.
func sweepStaffSessions(ctx context.Context, sessions *web.StaffSessionStore, log *logger.Logger) {
	ticker := time.NewTicker(staffSessionSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sessions.Sweep(); removed > 0 {
				log.WithField("removed", removed).Debug("Expired staff sessions swept")
			}
		}
	}
}
