package subscription

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	// ListActive returns active subscriptions, optionally restricted to one owner.
	ListActive(ctx context.Context, userID *uint) ([]*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
	// UpdateRenewalDate persists only the advanced renewal pointer.
	// The engine calls it once per subscription after a catch-up loop.
	UpdateRenewalDate(ctx context.Context, id uint, nextRenewalDate time.Time) error
	// IsActive reads the current active flag from the store. The catch-up
	// loop re-checks it every iteration so a concurrent pause stops
	// generation immediately.
	IsActive(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Subscription, int64, error)
}

type Filter struct {
	UserID   *uint
	Active   *bool
	Category *string
	Page     int
	PageSize int
}
