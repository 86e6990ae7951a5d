package handlers

import (
	"time"

	"centime/internal/domain/subscription"
	"centime/internal/shared/biztime"
	"centime/internal/shared/mapper"
)

type SubscriptionResponse struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Name            string    `json:"name"`
	AmountCents     int64     `json:"amount_cents"`
	Amount          string    `json:"amount"`
	Currency        string    `json:"currency"`
	Category        string    `json:"category"`
	NextRenewalDate string    `json:"next_renewal_date"`
	Active          bool      `json:"active"`
	Origin          string    `json:"origin"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func toSubscriptionResponse(sub *subscription.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:              sub.ID(),
		UserID:          sub.UserID(),
		Name:            sub.Name(),
		AmountCents:     sub.Amount().AmountInCents(),
		Amount:          sub.Amount().String(),
		Currency:        sub.Amount().Currency(),
		Category:        sub.Category().String(),
		NextRenewalDate: biztime.FormatDate(sub.NextRenewalDate()),
		Active:          sub.IsActive(),
		Origin:          sub.Origin().String(),
		Notes:           sub.Notes(),
		CreatedAt:       sub.CreatedAt(),
	}
}

func toSubscriptionResponses(subs []*subscription.Subscription) []SubscriptionResponse {
	return mapper.MapSlice(subs, toSubscriptionResponse)
}
