package billing

import (
	"fmt"
	"strings"
	"time"

	vo "centime/internal/domain/billing/valueobjects"
	shared "centime/internal/domain/shared/valueobjects"
	"centime/internal/domain/subscription"
	"centime/internal/shared/biztime"
)

const maxTitleLength = 150

// Bill represents one payable item. Bills generated from a subscription
// keep a nullable back-reference so they survive subscription deletion;
// the pair (subscription, due date) identifies a cycle and is unique.
type Bill struct {
	id             uint
	userID         uint
	subscriptionID *uint
	title          string
	description    string
	amount         shared.Money
	dueDate        time.Time
	category       shared.Category
	status         vo.BillStatus
	createdBy      *uint
	paidAt         *time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBill creates a directly assigned bill (admin workflow).
func NewBill(
	userID uint,
	title string,
	description string,
	amount shared.Money,
	dueDate time.Time,
	category shared.Category,
	createdBy *uint,
) (*Bill, error) {
	title = strings.TrimSpace(title)
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("bill title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("bill title is too long")
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if dueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}

	now := biztime.NowUTC()
	return &Bill{
		userID:      userID,
		title:       title,
		description: description,
		amount:      amount,
		dueDate:     biztime.DateOnly(dueDate),
		category:    category.OrDefault(),
		status:      vo.BillStatusUnpaid,
		createdBy:   createdBy,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewBillFromSubscription materializes the bill for one subscription cycle.
// Title, description, amount and category all come from the subscription;
// the due date is the cycle being billed.
func NewBillFromSubscription(sub *subscription.Subscription, dueDate time.Time) (*Bill, error) {
	if sub == nil {
		return nil, fmt.Errorf("subscription is required")
	}
	if sub.ID() == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}

	bill, err := NewBill(
		sub.UserID(),
		sub.Name(),
		sub.BillingDescription(),
		sub.Amount(),
		dueDate,
		sub.Category(),
		nil,
	)
	if err != nil {
		return nil, err
	}

	subID := sub.ID()
	bill.subscriptionID = &subID
	return bill, nil
}

// BillReconstructParams carries persisted state back into the aggregate.
type BillReconstructParams struct {
	ID             uint
	UserID         uint
	SubscriptionID *uint
	Title          string
	Description    string
	Amount         shared.Money
	DueDate        time.Time
	Category       shared.Category
	Status         vo.BillStatus
	CreatedBy      *uint
	PaidAt         *time.Time
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReconstructBill rebuilds a bill from persistence.
func ReconstructBill(p BillReconstructParams) (*Bill, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("bill ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid bill status: %s", p.Status)
	}

	return &Bill{
		id:             p.ID,
		userID:         p.UserID,
		subscriptionID: p.SubscriptionID,
		title:          p.Title,
		description:    p.Description,
		amount:         p.Amount,
		dueDate:        biztime.DateOnly(p.DueDate),
		category:       p.Category.OrDefault(),
		status:         p.Status,
		createdBy:      p.CreatedBy,
		paidAt:         p.PaidAt,
		version:        p.Version,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func (b *Bill) ID() uint                  { return b.id }
func (b *Bill) UserID() uint              { return b.userID }
func (b *Bill) SubscriptionID() *uint     { return b.subscriptionID }
func (b *Bill) Title() string             { return b.title }
func (b *Bill) Description() string       { return b.description }
func (b *Bill) Amount() shared.Money      { return b.amount }
func (b *Bill) DueDate() time.Time        { return b.dueDate }
func (b *Bill) Category() shared.Category { return b.category }
func (b *Bill) Status() vo.BillStatus     { return b.status }
func (b *Bill) CreatedBy() *uint          { return b.createdBy }
func (b *Bill) PaidAt() *time.Time        { return b.paidAt }
func (b *Bill) Version() int              { return b.version }
func (b *Bill) CreatedAt() time.Time      { return b.createdAt }
func (b *Bill) UpdatedAt() time.Time      { return b.updatedAt }

func (b *Bill) IsPaid() bool {
	return b.status.IsPaid()
}

// BelongsTo reports whether the bill is owned by the given user.
func (b *Bill) BelongsTo(userID uint) bool {
	return b.userID == userID
}

// SetID sets the bill ID (only for persistence layer use)
func (b *Bill) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("bill ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("bill ID cannot be zero")
	}
	b.id = id
	return nil
}

// MarkPaid transitions the bill from unpaid to paid and stamps paidAt.
// Paid is terminal; marking an already paid bill is a no-op.
func (b *Bill) MarkPaid(paidAt time.Time) error {
	if b.status.IsPaid() {
		return nil
	}
	if b.status != vo.BillStatusUnpaid {
		return fmt.Errorf("cannot pay bill with status %s", b.status)
	}

	paid := paidAt.UTC()
	b.status = vo.BillStatusPaid
	b.paidAt = &paid
	b.updatedAt = biztime.NowUTC()
	b.version++
	return nil
}
