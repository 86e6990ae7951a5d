package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/billing"
	"centime/internal/shared/authorization"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type GetBillCommand struct {
	BillID    uint
	ActorID   uint
	ActorRole authorization.Role
}

type GetBillResult struct {
	Bill *billing.Bill
	// LatestTransaction is the settlement record when the bill is paid,
	// nil otherwise.
	LatestTransaction *billing.Transaction
}

type GetBillUseCase struct {
	billRepo        billing.BillRepository
	transactionRepo billing.TransactionRepository
	logger          logger.Interface
}

func NewGetBillUseCase(
	billRepo billing.BillRepository,
	transactionRepo billing.TransactionRepository,
	logger logger.Interface,
) *GetBillUseCase {
	return &GetBillUseCase{
		billRepo:        billRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

func (uc *GetBillUseCase) Execute(ctx context.Context, cmd GetBillCommand) (*GetBillResult, error) {
	bill, err := uc.billRepo.GetByID(ctx, cmd.BillID)
	if err != nil {
		uc.logger.Errorw("failed to get bill", "bill_id", cmd.BillID, "error", err)
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	if bill == nil {
		return nil, errors.NewNotFoundError("bill not found")
	}

	if !cmd.ActorRole.CanActFor(cmd.ActorID, bill.UserID()) {
		return nil, errors.NewForbiddenError("bill belongs to another user")
	}

	result := &GetBillResult{Bill: bill}

	if bill.IsPaid() {
		latest, err := uc.transactionRepo.GetLatestByBillID(ctx, bill.ID())
		if err != nil {
			uc.logger.Errorw("failed to get latest transaction", "bill_id", bill.ID(), "error", err)
			return nil, fmt.Errorf("failed to get latest transaction: %w", err)
		}
		result.LatestTransaction = latest
	}

	return result, nil
}
