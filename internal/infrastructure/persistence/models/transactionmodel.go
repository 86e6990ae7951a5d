package models

import (
	"time"

	"centime/internal/shared/constants"
)

// TransactionModel represents the database persistence model for payment
// transactions. Rows are insert-only.
type TransactionModel struct {
	ID          uint      `gorm:"primarykey"`
	UserID      uint      `gorm:"not null;index:idx_user_transaction"`
	BillID      uint      `gorm:"not null;index:idx_bill_transaction"`
	AmountCents int64     `gorm:"not null;default:0"`
	Currency    string    `gorm:"not null;size:3;default:USD"`
	PaymentDate time.Time `gorm:"not null;index:idx_payment_date"`
	Method      string    `gorm:"not null;size:40;default:simulated"`
	Status      string    `gorm:"not null;size:10;default:success"`
	ProcessedBy *uint
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return constants.TableTransactions
}
