package server

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"shortener-go/internal/service"
	"shortener-go/pkg/logging"
)

const reconcileTimeout = 5 * time.Minute

// NewScheduler registers the click counter reconciliation on schedule. The returned
// cron is not started. An empty schedule yields a scheduler without jobs.
func NewScheduler(schedule string, svc *service.UrlService) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if schedule == "" {
		return c, nil
	}

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
		defer cancel()

		fixed, err := svc.Reconcile(ctx)
		if err != nil {
			logging.Logger.Error("Click reconciliation failed", zap.Error(err))
			return
		}
		logging.Logger.Info("Click reconciliation finished", zap.Int("fixed", fixed))
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
