package subscription

import (
	"fmt"
	"strings"
	"time"

	shared "centime/internal/domain/shared/valueobjects"
	vo "centime/internal/domain/subscription/valueobjects"
	"centime/internal/shared/biztime"
	"centime/internal/shared/constants"
)

const maxNameLength = 120

// Subscription represents the recurring billing aggregate root.
// nextRenewalDate always points at the next cycle not yet billed;
// it only ever moves forward, one calendar month per step.
type Subscription struct {
	id               uint
	userID           uint
	name             string
	amount           shared.Money
	category         shared.Category
	nextRenewalDate  time.Time
	active           bool
	origin           vo.Origin
	notes            string
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewSubscription creates a new subscription anchored at nextRenewalDate.
func NewSubscription(
	userID uint,
	name string,
	amount shared.Money,
	category shared.Category,
	nextRenewalDate time.Time,
	origin vo.Origin,
	notes string,
) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("subscription name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("subscription name is too long")
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if nextRenewalDate.IsZero() {
		return nil, fmt.Errorf("next renewal date is required")
	}
	if !origin.IsValid() {
		return nil, fmt.Errorf("invalid subscription origin: %s", origin)
	}

	now := biztime.NowUTC()
	return &Subscription{
		userID:          userID,
		name:            name,
		amount:          amount,
		category:        category.OrDefault(),
		nextRenewalDate: biztime.DateOnly(nextRenewalDate),
		active:          true,
		origin:          origin,
		notes:           notes,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID              uint
	UserID          uint
	Name            string
	Amount          shared.Money
	Category        shared.Category
	NextRenewalDate time.Time
	Active          bool
	Origin          vo.Origin
	Notes           string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !p.Origin.IsValid() {
		return nil, fmt.Errorf("invalid subscription origin: %s", p.Origin)
	}
	if p.NextRenewalDate.IsZero() {
		return nil, fmt.Errorf("next renewal date is required")
	}

	return &Subscription{
		id:              p.ID,
		userID:          p.UserID,
		name:            p.Name,
		amount:          p.Amount,
		category:        p.Category.OrDefault(),
		nextRenewalDate: biztime.DateOnly(p.NextRenewalDate),
		active:          p.Active,
		origin:          p.Origin,
		notes:           p.Notes,
		version:         p.Version,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                   { return s.id }
func (s *Subscription) UserID() uint               { return s.userID }
func (s *Subscription) Name() string               { return s.name }
func (s *Subscription) Amount() shared.Money       { return s.amount }
func (s *Subscription) Category() shared.Category  { return s.category }
func (s *Subscription) NextRenewalDate() time.Time { return s.nextRenewalDate }
func (s *Subscription) IsActive() bool             { return s.active }
func (s *Subscription) Origin() vo.Origin          { return s.origin }
func (s *Subscription) Notes() string              { return s.notes }
func (s *Subscription) Version() int               { return s.version }
func (s *Subscription) CreatedAt() time.Time       { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time       { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// BillingDescription is the description stamped on generated bills.
// Empty notes fall back to a generic recurring payment label.
func (s *Subscription) BillingDescription() string {
	if strings.TrimSpace(s.notes) == "" {
		return constants.DefaultBillDescription
	}
	return s.notes
}

// AdvanceRenewal moves the renewal pointer forward by one calendar month.
// The target keeps the same day-of-month, clamped to the target month's
// last valid day. A pointer sitting on the last day of its month advances
// to the last day of the next month, so an end-of-month anchor renews
// Jan 31 -> Feb 28/29 -> Mar 31 -> Apr 30 without drifting to the 28th.
func (s *Subscription) AdvanceRenewal() {
	s.nextRenewalDate = NextRenewalAfter(s.nextRenewalDate)
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// NextRenewalAfter computes the renewal date one calendar month after d.
// Each step looks only at its own current date; no original anchor day is kept.
func NextRenewalAfter(d time.Time) time.Time {
	d = biztime.DateOnly(d)
	firstOfNext := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	lastOfNext := biztime.LastDayOfMonth(firstOfNext)

	day := d.Day()
	if day == biztime.LastDayOfMonth(d) || day > lastOfNext {
		day = lastOfNext
	}

	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, time.UTC)
}

// Pause stops cycle generation. A paused subscription is never advanced.
func (s *Subscription) Pause() {
	if !s.active {
		return
	}
	s.active = false
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// Resume reactivates the subscription. The renewal pointer is clamped
// forward to at least today so a long pause does not replay dormant cycles.
func (s *Subscription) Resume(today time.Time) {
	if s.active {
		return
	}
	s.active = true
	today = biztime.DateOnly(today)
	if s.nextRenewalDate.Before(today) {
		s.nextRenewalDate = today
	}
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// UpdateNotes replaces the free-text notes.
func (s *Subscription) UpdateNotes(notes string) {
	s.notes = notes
	s.updatedAt = biztime.NowUTC()
	s.version++
}

// Rename changes the subscription display name.
func (s *Subscription) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("subscription name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("subscription name is too long")
	}
	s.name = name
	s.updatedAt = biztime.NowUTC()
	s.version++
	return nil
}

// DueOn reports whether the next unbilled cycle falls on or before the
// given reference date.
func (s *Subscription) DueOn(referenceDate time.Time) bool {
	return !s.nextRenewalDate.After(biztime.DateOnly(referenceDate))
}
