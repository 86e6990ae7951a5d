package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/subscription"
	"centime/internal/shared/authorization"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type UpdateSubscriptionCommand struct {
	SubscriptionID uint
	ActorID        uint
	ActorRole      authorization.Role
	// Name and Notes replace the current values when non-nil.
	Name  *string
	Notes *string
}

type UpdateSubscriptionResult struct {
	Subscription *subscription.Subscription
}

// UpdateSubscriptionUseCase edits the descriptive fields. Amount and
// renewal date are deliberately not editable here; amount changes take
// effect by pausing and recreating, keeping already generated bills
// untouched.
type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*UpdateSubscriptionResult, error) {
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

	if cmd.Name != nil {
		if err := sub.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Notes != nil {
		sub.UpdateNotes(*cmd.Notes)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return &UpdateSubscriptionResult{Subscription: sub}, nil
}
