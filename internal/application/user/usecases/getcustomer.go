package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/billing"
	"centime/internal/domain/user"
	"centime/internal/shared/authorization"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type GetCustomerCommand struct {
	UserID    uint
	ActorID   uint
	ActorRole authorization.Role
}

type GetCustomerResult struct {
	User        *user.User
	Profile     *user.Profile
	UnpaidBills int64
}

type GetCustomerUseCase struct {
	userRepo    user.Repository
	profileRepo user.ProfileRepository
	billRepo    billing.BillRepository
	logger      logger.Interface
}

func NewGetCustomerUseCase(
	userRepo user.Repository,
	profileRepo user.ProfileRepository,
	billRepo billing.BillRepository,
	logger logger.Interface,
) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		billRepo:    billRepo,
		logger:      logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, cmd GetCustomerCommand) (*GetCustomerResult, error) {
	if !cmd.ActorRole.CanActFor(cmd.ActorID, cmd.UserID) {
		return nil, errors.NewForbiddenError("cannot view another user's account")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	unpaid, err := uc.billRepo.CountUnpaidByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unpaid bills", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to count unpaid bills: %w", err)
	}

	return &GetCustomerResult{
		User:        u,
		Profile:     profile,
		UnpaidBills: unpaid,
	}, nil
}
