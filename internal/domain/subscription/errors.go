package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscriptionInactive = errors.New("subscription inactive")
	ErrInvalidRenewalDate   = errors.New("invalid renewal date")
)
