package models

import (
	"time"

	"gorm.io/gorm"

	"centime/internal/shared/constants"
)

// BillModel represents the database persistence model for bills.
// The composite unique index on (subscription_id, due_date) is the
// natural key guaranteeing at most one bill per subscription cycle;
// rows with a NULL subscription_id (direct assignments) are exempt by
// SQL NULL semantics.
type BillModel struct {
	ID             uint      `gorm:"primarykey"`
	UserID         uint      `gorm:"not null;index:idx_user_bill"`
	SubscriptionID *uint     `gorm:"uniqueIndex:uniq_bill_cycle"`
	Title          string    `gorm:"not null;size:150"`
	Description    string    `gorm:"type:text"`
	AmountCents    int64     `gorm:"not null;default:0"`
	Currency       string    `gorm:"not null;size:3;default:USD"`
	DueDate        time.Time `gorm:"not null;uniqueIndex:uniq_bill_cycle;index:idx_due_date"`
	Category       string    `gorm:"not null;size:40;default:subscription"`
	Status         string    `gorm:"not null;size:10;default:unpaid;index:idx_bill_status"`
	CreatedBy      *uint
	PaidAt         *time.Time
	Version        int `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (BillModel) TableName() string {
	return constants.TableBills
}

// BeforeCreate hook for GORM
func (b *BillModel) BeforeCreate(tx *gorm.DB) error {
	if b.Version == 0 {
		b.Version = 1
	}
	return nil
}
