package user

import (
	"fmt"
	"time"

	"centime/internal/shared/biztime"
)

// Profile holds contact details for a user. One profile per user; it is
// created together with the account by the factory, never by an implicit
// persistence hook.
type Profile struct {
	id        uint
	userID    uint
	fullName  string
	phone     string
	address   string
	createdAt time.Time
	updatedAt time.Time
}

func NewProfile(userID uint, fullName, phone, address string) (*Profile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := biztime.NowUTC()
	return &Profile{
		userID:    userID,
		fullName:  fullName,
		phone:     phone,
		address:   address,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ProfileReconstructParams carries persisted state back into the entity.
type ProfileReconstructParams struct {
	ID        uint
	UserID    uint
	FullName  string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReconstructProfile rebuilds a profile from persistence.
func ReconstructProfile(p ProfileReconstructParams) (*Profile, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Profile{
		id:        p.ID,
		userID:    p.UserID,
		fullName:  p.FullName,
		phone:     p.Phone,
		address:   p.Address,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}, nil
}

func (p *Profile) ID() uint             { return p.id }
func (p *Profile) UserID() uint         { return p.userID }
func (p *Profile) FullName() string     { return p.fullName }
func (p *Profile) Phone() string        { return p.phone }
func (p *Profile) Address() string      { return p.address }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the profile ID (only for persistence layer use)
func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update replaces the contact details.
func (p *Profile) Update(fullName, phone, address string) {
	p.fullName = fullName
	p.phone = phone
	p.address = address
	p.updatedAt = biztime.NowUTC()
}
