package usecases

import (
	"context"
	"fmt"
	"time"

	shared "centime/internal/domain/shared/valueobjects"
	"centime/internal/domain/subscription"
	vo "centime/internal/domain/subscription/valueobjects"
	"centime/internal/domain/user"
	"centime/internal/shared/authorization"
	"centime/internal/shared/biztime"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	// UserID is the owner. Admins may create for any user; customers
	// only for themselves.
	UserID      uint
	ActorID     uint
	ActorRole   authorization.Role
	Name        string
	AmountCents int64
	Currency    string
	Category    string
	// NextRenewalDate anchors the first billing cycle. Zero means today.
	NextRenewalDate time.Time
	Notes           string
}

type CreateSubscriptionResult struct {
	Subscription *subscription.Subscription
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*CreateSubscriptionResult, error) {
	if !cmd.ActorRole.CanActFor(cmd.ActorID, cmd.UserID) {
		return nil, errors.NewForbiddenError("cannot create subscriptions for another user")
	}

	owner, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get owner", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	category := shared.DefaultCategory
	if cmd.Category != "" {
		category, err = shared.NewCategory(cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid category: %s", cmd.Category))
		}
	}

	origin := vo.OriginCustomer
	if cmd.ActorRole.IsAdmin() {
		origin = vo.OriginAdmin
	}

	nextRenewalDate := cmd.NextRenewalDate
	if nextRenewalDate.IsZero() {
		nextRenewalDate = biztime.TodayUTC()
	}

	sub, err := subscription.NewSubscription(
		cmd.UserID,
		cmd.Name,
		shared.NewMoney(cmd.AmountCents, cmd.Currency),
		category,
		nextRenewalDate,
		origin,
		cmd.Notes,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"user_id", cmd.UserID,
		"origin", origin.String(),
		"next_renewal_date", biztime.FormatDate(sub.NextRenewalDate()))

	return &CreateSubscriptionResult{Subscription: sub}, nil
}
