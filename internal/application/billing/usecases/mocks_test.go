package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"centime/internal/domain/billing"
	"centime/internal/domain/subscription"
	"centime/internal/shared/db"
	"centime/internal/shared/logger"
)

type mockSubscriptionRepository struct {
	CreateFunc            func(ctx context.Context, sub *subscription.Subscription) error
	GetByIDFunc           func(ctx context.Context, id uint) (*subscription.Subscription, error)
	GetByUserIDFunc       func(ctx context.Context, userID uint) ([]*subscription.Subscription, error)
	ListActiveFunc        func(ctx context.Context, userID *uint) ([]*subscription.Subscription, error)
	UpdateFunc            func(ctx context.Context, sub *subscription.Subscription) error
	UpdateRenewalDateFunc func(ctx context.Context, id uint, nextRenewalDate time.Time) error
	IsActiveFunc          func(ctx context.Context, id uint) (bool, error)
	ListFunc              func(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListActive(ctx context.Context, userID *uint) ([]*subscription.Subscription, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) UpdateRenewalDate(ctx context.Context, id uint, nextRenewalDate time.Time) error {
	if m.UpdateRenewalDateFunc != nil {
		return m.UpdateRenewalDateFunc(ctx, id, nextRenewalDate)
	}
	return nil
}

func (m *mockSubscriptionRepository) IsActive(ctx context.Context, id uint) (bool, error) {
	if m.IsActiveFunc != nil {
		return m.IsActiveFunc(ctx, id)
	}
	return true, nil
}

func (m *mockSubscriptionRepository) List(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockBillRepository struct {
	CreateFunc                      func(ctx context.Context, bill *billing.Bill) error
	CreateIfAbsentFunc              func(ctx context.Context, bill *billing.Bill) (bool, error)
	GetByIDFunc                     func(ctx context.Context, id uint) (*billing.Bill, error)
	GetBySubscriptionAndDueDateFunc func(ctx context.Context, subscriptionID uint, dueDate time.Time) (*billing.Bill, error)
	UpdateFunc                      func(ctx context.Context, bill *billing.Bill) error
	ListFunc                        func(ctx context.Context, filter billing.BillFilter) ([]*billing.Bill, int64, error)
	CountUnpaidByUserIDFunc         func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bill)
	}
	return nil
}

func (m *mockBillRepository) CreateIfAbsent(ctx context.Context, bill *billing.Bill) (bool, error) {
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, bill)
	}
	return true, nil
}

func (m *mockBillRepository) GetByID(ctx context.Context, id uint) (*billing.Bill, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBillRepository) GetBySubscriptionAndDueDate(ctx context.Context, subscriptionID uint, dueDate time.Time) (*billing.Bill, error) {
	if m.GetBySubscriptionAndDueDateFunc != nil {
		return m.GetBySubscriptionAndDueDateFunc(ctx, subscriptionID, dueDate)
	}
	return nil, nil
}

func (m *mockBillRepository) Update(ctx context.Context, bill *billing.Bill) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, bill)
	}
	return nil
}

func (m *mockBillRepository) List(ctx context.Context, filter billing.BillFilter) ([]*billing.Bill, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockBillRepository) CountUnpaidByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnpaidByUserIDFunc != nil {
		return m.CountUnpaidByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

type mockTransactionRepository struct {
	CreateFunc            func(ctx context.Context, transaction *billing.Transaction) error
	GetByIDFunc           func(ctx context.Context, id uint) (*billing.Transaction, error)
	GetLatestByBillIDFunc func(ctx context.Context, billID uint) (*billing.Transaction, error)
	ListFunc              func(ctx context.Context, filter billing.TransactionFilter) ([]*billing.Transaction, int64, error)
	CountByStatusFunc     func(ctx context.Context, userID uint, status string) (int64, error)
	SumAmountByUserIDFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockTransactionRepository) Create(ctx context.Context, transaction *billing.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, transaction)
	}
	return nil
}

func (m *mockTransactionRepository) GetByID(ctx context.Context, id uint) (*billing.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTransactionRepository) GetLatestByBillID(ctx context.Context, billID uint) (*billing.Transaction, error) {
	if m.GetLatestByBillIDFunc != nil {
		return m.GetLatestByBillIDFunc(ctx, billID)
	}
	return nil, nil
}

func (m *mockTransactionRepository) List(ctx context.Context, filter billing.TransactionFilter) ([]*billing.Transaction, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTransactionRepository) CountByStatus(ctx context.Context, userID uint, status string) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, userID, status)
	}
	return 0, nil
}

func (m *mockTransactionRepository) SumAmountByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.SumAmountByUserIDFunc != nil {
		return m.SumAmountByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Fatal(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})  {}

// newTestTxManager backs the transaction manager with a throwaway
// in-memory database so transactional use cases run against mocks.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}
