package usecases

import (
	"context"
	"fmt"
	"time"

	"centime/internal/domain/billing"
	shared "centime/internal/domain/shared/valueobjects"
	"centime/internal/domain/user"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type CreateBillCommand struct {
	UserID      uint
	Title       string
	Description string
	AmountCents int64
	Currency    string
	DueDate     time.Time
	Category    string
	// CreatedBy is the admin assigning the bill.
	CreatedBy uint
}

type CreateBillResult struct {
	Bill *billing.Bill
}

// CreateBillUseCase assigns a one-off bill directly to a customer. This
// is the admin path; recurring bills come from the generation engine.
type CreateBillUseCase struct {
	billRepo billing.BillRepository
	userRepo user.Repository
	logger   logger.Interface
}

func NewCreateBillUseCase(
	billRepo billing.BillRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateBillUseCase {
	return &CreateBillUseCase{
		billRepo: billRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *CreateBillUseCase) Execute(ctx context.Context, cmd CreateBillCommand) (*CreateBillResult, error) {
	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get target user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get target user: %w", err)
	}
	if target == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	category := shared.DefaultCategory
	if cmd.Category != "" {
		category, err = shared.NewCategory(cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid category: %s", cmd.Category))
		}
	}

	createdBy := cmd.CreatedBy
	bill, err := billing.NewBill(
		cmd.UserID,
		cmd.Title,
		cmd.Description,
		shared.NewMoney(cmd.AmountCents, cmd.Currency),
		cmd.DueDate,
		category,
		&createdBy,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		uc.logger.Errorw("failed to create bill", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	uc.logger.Infow("bill assigned",
		"bill_id", bill.ID(),
		"user_id", cmd.UserID,
		"created_by", cmd.CreatedBy)

	return &CreateBillResult{Bill: bill}, nil
}
