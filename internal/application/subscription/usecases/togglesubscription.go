package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/subscription"
	"centime/internal/shared/authorization"
	"centime/internal/shared/biztime"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type ToggleSubscriptionCommand struct {
	SubscriptionID uint
	ActorID        uint
	ActorRole      authorization.Role
}

type ToggleSubscriptionResult struct {
	Subscription *subscription.Subscription
}

// ToggleSubscriptionUseCase flips a subscription between active and
// paused. Resuming clamps the renewal pointer forward to today so the
// dormant period is never billed retroactively.
type ToggleSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewToggleSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ToggleSubscriptionUseCase {
	return &ToggleSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ToggleSubscriptionUseCase) Execute(ctx context.Context, cmd ToggleSubscriptionCommand) (*ToggleSubscriptionResult, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "subscription_id", cmd.SubscriptionID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	if !cmd.ActorRole.CanActFor(cmd.ActorID, sub.UserID()) {
		return nil, errors.NewForbiddenError("subscription belongs to another user")
	}

	if sub.IsActive() {
		sub.Pause()
	} else {
		sub.Resume(biztime.TodayUTC())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription toggled",
		"subscription_id", sub.ID(),
		"active", sub.IsActive(),
		"next_renewal_date", biztime.FormatDate(sub.NextRenewalDate()))

	return &ToggleSubscriptionResult{Subscription: sub}, nil
}
