package usecases

import (
	"context"
	"fmt"
	"time"

	"centime/internal/domain/billing"
	"centime/internal/domain/subscription"
	"centime/internal/shared/biztime"
	"centime/internal/shared/db"
	"centime/internal/shared/logger"
)

type EnsureBillsDueCommand struct {
	// ReferenceDate is the inclusive upper bound for cycles to bill.
	// Zero means today.
	ReferenceDate time.Time
	// UserID restricts generation to one owner's subscriptions when set.
	UserID *uint
}

type EnsureBillsDueResult struct {
	// Created counts bills actually inserted across all subscriptions.
	Created int
	// Failed counts subscriptions whose catch-up aborted with an error.
	Failed int
}

// EnsureBillsDueUseCase walks every active subscription and materializes
// one bill per elapsed cycle up to the reference date. Each subscription
// is caught up in its own transaction so one failure never blocks the
// rest of the run. The (subscription, due date) unique index makes the
// whole operation safe to re-run and safe against concurrent callers.
type EnsureBillsDueUseCase struct {
	subscriptionRepo subscription.Repository
	billRepo         billing.BillRepository
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewEnsureBillsDueUseCase(
	subscriptionRepo subscription.Repository,
	billRepo billing.BillRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *EnsureBillsDueUseCase {
	return &EnsureBillsDueUseCase{
		subscriptionRepo: subscriptionRepo,
		billRepo:         billRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *EnsureBillsDueUseCase) Execute(ctx context.Context, cmd EnsureBillsDueCommand) (*EnsureBillsDueResult, error) {
	referenceDate := cmd.ReferenceDate
	if referenceDate.IsZero() {
		referenceDate = biztime.TodayUTC()
	}
	referenceDate = biztime.DateOnly(referenceDate)

	subs, err := uc.subscriptionRepo.ListActive(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list active subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list active subscriptions: %w", err)
	}

	result := &EnsureBillsDueResult{}
	for _, sub := range subs {
		created, err := uc.catchUp(ctx, sub, referenceDate)
		if err != nil {
			result.Failed++
			uc.logger.Errorw("failed to generate bills for subscription",
				"subscription_id", sub.ID(),
				"user_id", sub.UserID(),
				"error", err)
			continue
		}
		result.Created += created
	}

	uc.logger.Infow("bill generation run completed",
		"reference_date", biztime.FormatDate(referenceDate),
		"subscriptions", len(subs),
		"created", result.Created,
		"failed", result.Failed)

	return result, nil
}

// catchUp bills every elapsed cycle of one subscription atomically.
// The renewal pointer is advanced in memory during the loop and written
// back exactly once at the end.
func (uc *EnsureBillsDueUseCase) catchUp(ctx context.Context, sub *subscription.Subscription, referenceDate time.Time) (int, error) {
	created := 0

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		advanced := false

		for sub.DueOn(referenceDate) {
			// A concurrent pause must stop generation mid-loop, so the
			// flag is read fresh from the store on every iteration.
			active, err := uc.subscriptionRepo.IsActive(txCtx, sub.ID())
			if err != nil {
				return err
			}
			if !active {
				uc.logger.Infow("subscription paused during catch-up, stopping",
					"subscription_id", sub.ID(),
					"cycle", biztime.FormatDate(sub.NextRenewalDate()))
				break
			}

			cycle := sub.NextRenewalDate()
			bill, err := billing.NewBillFromSubscription(sub, cycle)
			if err != nil {
				return fmt.Errorf("failed to build bill for cycle %s: %w", biztime.FormatDate(cycle), err)
			}

			inserted, err := uc.billRepo.CreateIfAbsent(txCtx, bill)
			if err != nil {
				return fmt.Errorf("failed to create bill for cycle %s: %w", biztime.FormatDate(cycle), err)
			}
			if inserted {
				created++
			}

			sub.AdvanceRenewal()
			advanced = true
		}

		if !advanced {
			return nil
		}

		return uc.subscriptionRepo.UpdateRenewalDate(txCtx, sub.ID(), sub.NextRenewalDate())
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}
