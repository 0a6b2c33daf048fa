package mqtt

import (
	"context"
	"time"

	"saunactl"
	"saunactl/internal/logger"
)

// Run publishes the current snapshot at the given interval until ctx is
// canceled. Publish failures are logged and retried on the next tick; the
// control loop is never involved.
func Run(ctx context.Context, pub Publisher, source func() saunactl.Snapshot, interval time.Duration, log *logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := pub.PublishStatus(source()); err != nil {
				log.Warnw("mqtt publish failed", "err", err)
			}
		}
	}
}
