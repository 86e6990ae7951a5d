package models

import (
	"time"

	"centime/internal/shared/constants"
)

// ProfileModel represents the database persistence model for user profiles.
type ProfileModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	FullName  string `gorm:"size:150"`
	Phone     string `gorm:"size:20"`
	Address   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return constants.TableProfiles
}
