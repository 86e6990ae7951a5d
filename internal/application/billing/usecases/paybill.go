package usecases

import (
	"context"
	"fmt"

	"centime/internal/domain/billing"
	vo "centime/internal/domain/billing/valueobjects"
	"centime/internal/shared/authorization"
	"centime/internal/shared/biztime"
	"centime/internal/shared/db"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type PayBillCommand struct {
	BillID    uint
	ActorID   uint
	ActorRole authorization.Role
	// Method is the payment method label; empty selects the simulated
	// gateway.
	Method string
}

type PayBillResult struct {
	Bill        *billing.Bill
	Transaction *billing.Transaction
	// AlreadyPaid reports that the bill was paid before this call and
	// no state changed.
	AlreadyPaid bool
}

// PayBillUseCase settles a bill. The captured amount always comes from
// the bill itself, never from the caller. Paying an already paid bill
// succeeds without a second transaction.
type PayBillUseCase struct {
	billRepo        billing.BillRepository
	transactionRepo billing.TransactionRepository
	txManager       *db.TransactionManager
	logger          logger.Interface
}

func NewPayBillUseCase(
	billRepo billing.BillRepository,
	transactionRepo billing.TransactionRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *PayBillUseCase {
	return &PayBillUseCase{
		billRepo:        billRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *PayBillUseCase) Execute(ctx context.Context, cmd PayBillCommand) (*PayBillResult, error) {
	bill, err := uc.billRepo.GetByID(ctx, cmd.BillID)
	if err != nil {
		uc.logger.Errorw("failed to get bill", "bill_id", cmd.BillID, "error", err)
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	if bill == nil {
		return nil, errors.NewNotFoundError("bill not found")
	}

	if !cmd.ActorRole.CanActFor(cmd.ActorID, bill.UserID()) {
		uc.logger.Warnw("payment attempt on another user's bill",
			"bill_id", bill.ID(), "actor_id", cmd.ActorID, "owner_id", bill.UserID())
		return nil, errors.NewForbiddenError("bill belongs to another user")
	}

	method, err := vo.NewPaymentMethod(cmd.Method)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid payment method: %s", cmd.Method))
	}

	if bill.IsPaid() {
		latest, err := uc.transactionRepo.GetLatestByBillID(ctx, bill.ID())
		if err != nil {
			uc.logger.Errorw("failed to get latest transaction", "bill_id", bill.ID(), "error", err)
			return nil, fmt.Errorf("failed to get latest transaction: %w", err)
		}
		if latest != nil {
			uc.logger.Infow("bill already paid, returning prior settlement", "bill_id", bill.ID())
			return &PayBillResult{
				Bill:        bill,
				Transaction: latest,
				AlreadyPaid: true,
			}, nil
		}
		// Paid bill with no settlement on record; create the missing
		// transaction below. MarkPaid is a no-op on a paid bill.
		uc.logger.Warnw("paid bill has no settlement record", "bill_id", bill.ID())
	}

	actorID := cmd.ActorID
	var transaction *billing.Transaction

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := bill.MarkPaid(biztime.NowUTC()); err != nil {
			return err
		}

		if err := uc.billRepo.Update(txCtx, bill); err != nil {
			return fmt.Errorf("failed to update bill: %w", err)
		}

		transaction, err = billing.NewTransaction(bill.UserID(), bill.ID(), bill.Amount(), method, &actorID)
		if err != nil {
			return fmt.Errorf("failed to build transaction: %w", err)
		}

		if err := uc.transactionRepo.Create(txCtx, transaction); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to pay bill", "bill_id", bill.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("bill paid",
		"bill_id", bill.ID(),
		"user_id", bill.UserID(),
		"amount", bill.Amount().String(),
		"method", method.String())

	return &PayBillResult{
		Bill:        bill,
		Transaction: transaction,
	}, nil
}
