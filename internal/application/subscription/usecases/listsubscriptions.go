package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/subscription"
	"centime/internal/shared/authorization"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type ListSubscriptionsCommand struct {
	ActorID   uint
	ActorRole authorization.Role
	Filter    subscription.Filter
}

type ListSubscriptionsResult struct {
	Subscriptions []*subscription.Subscription
	Total         int64
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, cmd ListSubscriptionsCommand) (*ListSubscriptionsResult, error) {
	filter := cmd.Filter

	if !cmd.ActorRole.IsAdmin() {
		if filter.UserID != nil && *filter.UserID != cmd.ActorID {
			return nil, errors.NewForbiddenError("cannot list another user's subscriptions")
		}
		actorID := cmd.ActorID
		filter.UserID = &actorID
	}

	subs, total, err := uc.subscriptionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return &ListSubscriptionsResult{
		Subscriptions: subs,
		Total:         total,
	}, nil
}
