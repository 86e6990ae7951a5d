package usecases

import (
	"context"
	"fmt"
	"strconv"

	"centime/internal/domain/user"
	"centime/internal/shared/authorization"
	"centime/internal/shared/db"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
	"centime/internal/shared/utils"
)

type CreateCustomerCommand struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"max=30"`
	Address  string `json:"address" validate:"max=255"`
}

type CreateCustomerResult struct {
	User    *user.User
	Profile *user.Profile
}

// CreateCustomerUseCase provisions a customer account with its profile
// in one transaction. Profile creation is an explicit step here, never
// a persistence hook.
type CreateCustomerUseCase struct {
	userRepo    user.Repository
	profileRepo user.ProfileRepository
	factory     *user.Factory
	enforcer    authorization.Enforcer
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewCreateCustomerUseCase(
	userRepo user.Repository,
	profileRepo user.ProfileRepository,
	factory *user.Factory,
	enforcer authorization.Enforcer,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		factory:     factory,
		enforcer:    enforcer,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*CreateCustomerResult, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username", "username", cmd.Username, "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("username already taken")
	}

	exists, err = uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	newUser, profile, err := uc.factory.CreateCustomer(
		cmd.Username, cmd.Email, cmd.Password,
		cmd.FullName, cmd.Phone, cmd.Address,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			return err
		}

		if err := uc.factory.AttachProfile(profile, newUser.ID()); err != nil {
			return err
		}

		return uc.profileRepo.Create(txCtx, profile)
	})
	if err != nil {
		uc.logger.Errorw("failed to create customer", "username", cmd.Username, "error", err)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	// Policy grant happens outside the DB transaction; casbin keeps its
	// own storage and a duplicate grant on retry is harmless.
	if uc.enforcer != nil {
		subject := strconv.FormatUint(uint64(newUser.ID()), 10)
		if err := uc.enforcer.AddRoleForUser(subject, authorization.RoleCustomer.String()); err != nil {
			uc.logger.Warnw("failed to grant customer role", "user_id", newUser.ID(), "error", err)
		}
	}

	uc.logger.Infow("customer created",
		"user_id", newUser.ID(),
		"username", newUser.Username())

	return &CreateCustomerResult{
		User:    newUser,
		Profile: profile,
	}, nil
}
