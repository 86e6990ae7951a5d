package billing

import (
	"context"
	"time"
)

type BillRepository interface {
	Create(ctx context.Context, bill *Bill) error
	// CreateIfAbsent inserts the bill unless one already exists for its
	// natural key (subscription, due date). It returns false without
	// error when another writer won the uniqueness race, so the engine
	// can treat the cycle as already billed.
	CreateIfAbsent(ctx context.Context, bill *Bill) (bool, error)
	GetByID(ctx context.Context, id uint) (*Bill, error)
	GetBySubscriptionAndDueDate(ctx context.Context, subscriptionID uint, dueDate time.Time) (*Bill, error)
	Update(ctx context.Context, bill *Bill) error
	List(ctx context.Context, filter BillFilter) ([]*Bill, int64, error)
	CountUnpaidByUserID(ctx context.Context, userID uint) (int64, error)
}

type BillFilter struct {
	UserID         *uint
	SubscriptionID *uint
	Status         *string
	DueFrom        *time.Time
	DueTo          *time.Time
	Page           int
	PageSize       int
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	GetByID(ctx context.Context, id uint) (*Transaction, error)
	// GetLatestByBillID returns the most recent transaction for a bill by
	// payment date, or nil when the bill has none.
	GetLatestByBillID(ctx context.Context, billID uint) (*Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*Transaction, int64, error)
	CountByStatus(ctx context.Context, userID uint, status string) (int64, error)
	SumAmountByUserID(ctx context.Context, userID uint) (int64, error)
}

type TransactionFilter struct {
	UserID   *uint
	BillID   *uint
	Status   *string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}
