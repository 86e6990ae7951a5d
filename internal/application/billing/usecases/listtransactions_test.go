package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centime/internal/domain/billing"
	vo "centime/internal/domain/billing/valueobjects"
	shared "centime/internal/domain/shared/valueobjects"
	"centime/internal/shared/authorization"
	"centime/internal/shared/errors"
)

func makeTransaction(t *testing.T, userID, billID uint) *billing.Transaction {
	t.Helper()
	processedBy := userID
	tx, err := billing.NewTransaction(userID, billID, shared.NewMoney(2999, "USD"), vo.PaymentMethodSimulated, &processedBy)
	require.NoError(t, err)
	return tx
}

func TestListTransactionsUseCase_CustomerGetsOwnSummary(t *testing.T) {
	tx := makeTransaction(t, 7, 10)

	transactionRepo := &mockTransactionRepository{
		ListFunc: func(ctx context.Context, filter billing.TransactionFilter) ([]*billing.Transaction, int64, error) {
			require.NotNil(t, filter.UserID)
			assert.Equal(t, uint(7), *filter.UserID)
			return []*billing.Transaction{tx}, 1, nil
		},
		CountByStatusFunc: func(ctx context.Context, userID uint, status string) (int64, error) {
			if status == "success" {
				return 5, nil
			}
			return 1, nil
		},
		SumAmountByUserIDFunc: func(ctx context.Context, userID uint) (int64, error) {
			assert.Equal(t, uint(7), userID)
			return 14995, nil
		},
	}

	uc := NewListTransactionsUseCase(transactionRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTransactionsCommand{
		ActorID:   7,
		ActorRole: authorization.RoleCustomer,
	})

	require.NoError(t, err)
	assert.Len(t, result.Transactions, 1)
	require.NotNil(t, result.Summary)
	assert.EqualValues(t, 5, result.Summary.SuccessCount)
	assert.EqualValues(t, 1, result.Summary.FailedCount)
	assert.EqualValues(t, 14995, result.Summary.TotalPaidCents)
}

func TestListTransactionsUseCase_AdminGlobalListSkipsSummary(t *testing.T) {
	transactionRepo := &mockTransactionRepository{
		ListFunc: func(ctx context.Context, filter billing.TransactionFilter) ([]*billing.Transaction, int64, error) {
			assert.Nil(t, filter.UserID)
			return nil, 0, nil
		},
		CountByStatusFunc: func(ctx context.Context, userID uint, status string) (int64, error) {
			t.Fatal("summary should not be computed for a global listing")
			return 0, nil
		},
	}

	uc := NewListTransactionsUseCase(transactionRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTransactionsCommand{
		ActorID:   3,
		ActorRole: authorization.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Nil(t, result.Summary)
}

func TestListTransactionsUseCase_CustomerCannotListOthers(t *testing.T) {
	otherID := uint(8)

	uc := NewListTransactionsUseCase(&mockTransactionRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ListTransactionsCommand{
		ActorID:   7,
		ActorRole: authorization.RoleCustomer,
		Filter:    billing.TransactionFilter{UserID: &otherID},
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}
