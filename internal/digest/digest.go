package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"chirpd/pkg/config"
	"chirpd/pkg/logger"
)

// StatsSource reports current collection sizes; satisfied by the
// repository's Stats method.
type StatsSource interface {
	Stats() (users, posts int)
}

type statsFunc func() (int, int)

func (f statsFunc) Stats() (int, int) { return f() }

// Func adapts a plain stats function into a StatsSource.
func Func(f func() (int, int)) StatsSource { return statsFunc(f) }

// Start starts the digest scheduler if enabled. The job periodically logs
// repository sizes so operators can track growth of an otherwise opaque
// in-memory store. Returns a cancel func.
func Start(ctx context.Context, cfg config.DigestConfig, src StatsSource) (context.CancelFunc, error) {
	if !cfg.Enabled {
		logger.Info("digest_disabled")
		return func() {}, nil
	}

	// map empty cron to default hourly
	cronExpr := cfg.Cron
	if cronExpr == "" {
		cronExpr = "0 * * * *"
	}
	if !gronx.IsValid(cronExpr) {
		logger.Error("digest_invalid_cron", "cron", cfg.Cron)
		return nil, fmt.Errorf("invalid digest cron expression: %s", cfg.Cron)
	}

	logger.Info("digest_enabled", "cron", cronExpr)
	ctx2, cancel := context.WithCancel(ctx)
	go runScheduler(ctx2, cronExpr, src)
	return cancel, nil
}

// runScheduler computes the next tick for the configured cron expression
// with gronx and sleeps until that time, emitting one digest per tick.
func runScheduler(ctx context.Context, cronExpr string, src StatsSource) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("digest_scheduler_stopping")
			return
		default:
		}

		now := time.Now().UTC()
		next, err := gronx.NextTickAfter(cronExpr, now, false)
		if err != nil {
			logger.Error("digest_nexttick_failed", "cron", cronExpr, "error", err)
			// fallback sleep then retry
			select {
			case <-time.After(30 * time.Second):
			case <-ctx.Done():
				logger.Info("digest_scheduler_stopping")
				return
			}
			continue
		}

		select {
		case <-time.After(time.Until(next)):
			runOnce(src)
		case <-ctx.Done():
			logger.Info("digest_scheduler_stopping")
			return
		}
	}
}

func runOnce(src StatsSource) {
	users, posts := src.Stats()
	logger.Info("digest", "users", users, "posts", posts)
}
