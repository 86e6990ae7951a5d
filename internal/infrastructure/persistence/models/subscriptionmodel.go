package models

import (
	"time"

	"gorm.io/gorm"

	"centime/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions.
// This is the anti-corruption layer between domain and database.
type SubscriptionModel struct {
	ID              uint      `gorm:"primarykey"`
	UserID          uint      `gorm:"not null;index:idx_user_subscription"`
	Name            string    `gorm:"not null;size:120"`
	AmountCents     int64     `gorm:"not null;default:0"`
	Currency        string    `gorm:"not null;size:3;default:USD"`
	Category        string    `gorm:"not null;size:40;default:subscription"`
	NextRenewalDate time.Time `gorm:"not null;index:idx_next_renewal"`
	Active          bool      `gorm:"not null;default:true;index:idx_sub_active"`
	Origin          string    `gorm:"not null;size:10;default:admin"`
	Notes           string    `gorm:"type:text"`
	Version         int       `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
