package scheduler

import (
	"context"
	"time"

	"centime/internal/application/billing/usecases"
	"centime/internal/shared/goroutine"
	"centime/internal/shared/logger"
)

// BillGenerator runs one catch-up pass over all active subscriptions.
type BillGenerator interface {
	Execute(ctx context.Context, cmd usecases.EnsureBillsDueCommand) (*usecases.EnsureBillsDueResult, error)
}

// BillingScheduler periodically materializes due bills. Generation is
// idempotent, so overlapping runs or an aggressive interval only cost
// wasted lookups, never duplicate bills.
type BillingScheduler struct {
	generator BillGenerator
	logger    logger.Interface
	stopChan  chan struct{}
	interval  time.Duration
}

func NewBillingScheduler(
	generator BillGenerator,
	intervalHours int,
	logger logger.Interface,
) *BillingScheduler {
	if intervalHours < 1 {
		intervalHours = 24
	}
	return &BillingScheduler{
		generator: generator,
		logger:    logger,
		stopChan:  make(chan struct{}),
		interval:  time.Duration(intervalHours) * time.Hour,
	}
}

// Start starts the scheduler
func (s *BillingScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting billing scheduler", "interval", s.interval)

	goroutine.SafeGo(s.logger, "billing-scheduler", func() {
		s.run(ctx)
	})
}

// Stop stops the scheduler
func (s *BillingScheduler) Stop() {
	close(s.stopChan)
}

func (s *BillingScheduler) run(ctx context.Context) {
	// Run immediately on start
	s.generate(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("billing scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("billing scheduler stopped")
			return
		case <-ticker.C:
			s.generate(ctx)
		}
	}
}

func (s *BillingScheduler) generate(ctx context.Context) {
	s.logger.Debugw("starting bill generation pass")

	result, err := s.generator.Execute(ctx, usecases.EnsureBillsDueCommand{})
	if err != nil {
		s.logger.Errorw("bill generation pass failed", "error", err)
		return
	}

	s.logger.Infow("bill generation pass completed",
		"created", result.Created,
		"failed", result.Failed)
}
