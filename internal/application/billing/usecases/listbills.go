package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/billing"
	"centime/internal/shared/authorization"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type ListBillsCommand struct {
	ActorID   uint
	ActorRole authorization.Role
	Filter    billing.BillFilter
}

type ListBillsResult struct {
	Bills []*billing.Bill
	Total int64
}

// ListBillsUseCase pages through bills. Customers are always pinned to
// their own rows regardless of the requested filter.
type ListBillsUseCase struct {
	billRepo billing.BillRepository
	logger   logger.Interface
}

func NewListBillsUseCase(billRepo billing.BillRepository, logger logger.Interface) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
		logger:   logger,
	}
}

func (uc *ListBillsUseCase) Execute(ctx context.Context, cmd ListBillsCommand) (*ListBillsResult, error) {
	filter := cmd.Filter

	if !cmd.ActorRole.IsAdmin() {
		if filter.UserID != nil && *filter.UserID != cmd.ActorID {
			return nil, errors.NewForbiddenError("cannot list another user's bills")
		}
		actorID := cmd.ActorID
		filter.UserID = &actorID
	}

	bills, total, err := uc.billRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list bills", "error", err)
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	return &ListBillsResult{
		Bills: bills,
		Total: total,
	}, nil
}
