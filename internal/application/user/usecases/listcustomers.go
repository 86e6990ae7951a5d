package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/billing"
	"centime/internal/domain/user"
	"centime/internal/shared/logger"
)

type ListCustomersCommand struct {
	Page     int
	PageSize int
}

type ListCustomersResult struct {
	Customers []*user.User
	// UnpaidCounts maps user ID to the number of unpaid bills, for the
	// customers on this page only.
	UnpaidCounts map[uint]int64
	Total        int64
}

type ListCustomersUseCase struct {
	userRepo user.Repository
	billRepo billing.BillRepository
	logger   logger.Interface
}

func NewListCustomersUseCase(
	userRepo user.Repository,
	billRepo billing.BillRepository,
	logger logger.Interface,
) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		userRepo: userRepo,
		billRepo: billRepo,
		logger:   logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, cmd ListCustomersCommand) (*ListCustomersResult, error) {
	customers, total, err := uc.userRepo.ListCustomers(ctx, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	unpaidCounts := make(map[uint]int64, len(customers))
	for _, customer := range customers {
		count, err := uc.billRepo.CountUnpaidByUserID(ctx, customer.ID())
		if err != nil {
			uc.logger.Errorw("failed to count unpaid bills", "user_id", customer.ID(), "error", err)
			return nil, fmt.Errorf("failed to count unpaid bills: %w", err)
		}
		unpaidCounts[customer.ID()] = count
	}

	return &ListCustomersResult{
		Customers:    customers,
		UnpaidCounts: unpaidCounts,
		Total:        total,
	}, nil
}
