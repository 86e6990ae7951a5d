package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/billing"
	vo "centime/internal/domain/billing/valueobjects"
	"centime/internal/shared/authorization"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type ListTransactionsCommand struct {
	ActorID   uint
	ActorRole authorization.Role
	Filter    billing.TransactionFilter
}

// TransactionSummary aggregates a user's whole payment history, not
// just the current page.
type TransactionSummary struct {
	SuccessCount   int64
	FailedCount    int64
	TotalPaidCents int64
}

type ListTransactionsResult struct {
	Transactions []*billing.Transaction
	// Summary is present only for listings scoped to a single user.
	Summary *TransactionSummary
	Total   int64
}

type ListTransactionsUseCase struct {
	transactionRepo billing.TransactionRepository
	logger          logger.Interface
}

func NewListTransactionsUseCase(transactionRepo billing.TransactionRepository, logger logger.Interface) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

func (uc *ListTransactionsUseCase) Execute(ctx context.Context, cmd ListTransactionsCommand) (*ListTransactionsResult, error) {
	filter := cmd.Filter

	if !cmd.ActorRole.IsAdmin() {
		if filter.UserID != nil && *filter.UserID != cmd.ActorID {
			return nil, errors.NewForbiddenError("cannot list another user's transactions")
		}
		actorID := cmd.ActorID
		filter.UserID = &actorID
	}

	transactions, total, err := uc.transactionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list transactions", "error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var summary *TransactionSummary
	if filter.UserID != nil {
		summary, err = uc.summarize(ctx, *filter.UserID)
		if err != nil {
			return nil, err
		}
	}

	return &ListTransactionsResult{
		Transactions: transactions,
		Summary:      summary,
		Total:        total,
	}, nil
}

func (uc *ListTransactionsUseCase) summarize(ctx context.Context, userID uint) (*TransactionSummary, error) {
	success, err := uc.transactionRepo.CountByStatus(ctx, userID, vo.TransactionStatusSuccess.String())
	if err != nil {
		uc.logger.Errorw("failed to count transactions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	failed, err := uc.transactionRepo.CountByStatus(ctx, userID, vo.TransactionStatusFailed.String())
	if err != nil {
		uc.logger.Errorw("failed to count transactions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	totalPaid, err := uc.transactionRepo.SumAmountByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to sum transactions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return &TransactionSummary{
		SuccessCount:   success,
		FailedCount:    failed,
		TotalPaidCents: totalPaid,
	}, nil
}
