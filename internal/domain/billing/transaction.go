package billing

import (
	"fmt"
	"time"

	vo "centime/internal/domain/billing/valueobjects"
	shared "centime/internal/domain/shared/valueobjects"
	"centime/internal/shared/biztime"
)

// Transaction records one payment capture against a bill. It is created
// as a side effect of a successful payment transition and never mutated
// afterwards. A bill may accumulate several transactions (retries); the
// latest by payment date is authoritative once the bill is paid.
type Transaction struct {
	id          uint
	userID      uint
	billID      uint
	amount      shared.Money
	paymentDate time.Time
	method      vo.PaymentMethod
	status      vo.TransactionStatus
	processedBy *uint
	createdAt   time.Time
}

// NewTransaction records a successful capture. The amount is always copied
// from the bill, never caller-supplied.
func NewTransaction(
	userID uint,
	billID uint,
	amount shared.Money,
	method vo.PaymentMethod,
	processedBy *uint,
) (*Transaction, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if billID == 0 {
		return nil, fmt.Errorf("bill ID is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}

	now := biztime.NowUTC()
	return &Transaction{
		userID:      userID,
		billID:      billID,
		amount:      amount,
		paymentDate: now,
		method:      method,
		status:      vo.TransactionStatusSuccess,
		processedBy: processedBy,
		createdAt:   now,
	}, nil
}

// TransactionReconstructParams carries persisted state back into the entity.
type TransactionReconstructParams struct {
	ID          uint
	UserID      uint
	BillID      uint
	Amount      shared.Money
	PaymentDate time.Time
	Method      vo.PaymentMethod
	Status      vo.TransactionStatus
	ProcessedBy *uint
	CreatedAt   time.Time
}

// ReconstructTransaction rebuilds a transaction from persistence.
func ReconstructTransaction(p TransactionReconstructParams) (*Transaction, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("transaction ID cannot be zero")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid transaction status: %s", p.Status)
	}

	return &Transaction{
		id:          p.ID,
		userID:      p.UserID,
		billID:      p.BillID,
		amount:      p.Amount,
		paymentDate: p.PaymentDate,
		method:      p.Method,
		status:      p.Status,
		processedBy: p.ProcessedBy,
		createdAt:   p.CreatedAt,
	}, nil
}

func (t *Transaction) ID() uint                    { return t.id }
func (t *Transaction) UserID() uint                { return t.userID }
func (t *Transaction) BillID() uint                { return t.billID }
func (t *Transaction) Amount() shared.Money        { return t.amount }
func (t *Transaction) PaymentDate() time.Time      { return t.paymentDate }
func (t *Transaction) Method() vo.PaymentMethod    { return t.method }
func (t *Transaction) Status() vo.TransactionStatus { return t.status }
func (t *Transaction) ProcessedBy() *uint          { return t.processedBy }
func (t *Transaction) CreatedAt() time.Time        { return t.createdAt }

// SetID sets the transaction ID (only for persistence layer use)
func (t *Transaction) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("transaction ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("transaction ID cannot be zero")
	}
	t.id = id
	return nil
}
