package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/user"
	"centime/internal/shared/authorization"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID    uint
	ActorID   uint
	ActorRole authorization.Role
	FullName  string
	Phone     string
	Address   string
}

type UpdateProfileResult struct {
	Profile *user.Profile
}

type UpdateProfileUseCase struct {
	profileRepo user.ProfileRepository
	logger      logger.Interface
}

func NewUpdateProfileUseCase(profileRepo user.ProfileRepository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	if !cmd.ActorRole.CanActFor(cmd.ActorID, cmd.UserID) {
		return nil, errors.NewForbiddenError("cannot edit another user's profile")
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("profile not found")
	}

	profile.Update(cmd.FullName, cmd.Phone, cmd.Address)

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileResult{Profile: profile}, nil
}
