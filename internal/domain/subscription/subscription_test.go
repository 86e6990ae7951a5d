package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shared "centime/internal/domain/shared/valueobjects"
	vo "centime/internal/domain/subscription/valueobjects"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTestSubscription(t *testing.T, renewalDate time.Time) *Subscription {
	t.Helper()
	sub, err := NewSubscription(
		1,
		"Streaming Plus",
		shared.NewMoney(2999, "USD"),
		shared.DefaultCategory,
		renewalDate,
		vo.OriginCustomer,
		"",
	)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(10))
	return sub
}

func TestNextRenewalAfter(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		expected time.Time
	}{
		{
			name:     "mid-month keeps day",
			from:     date(2024, time.January, 15),
			expected: date(2024, time.February, 15),
		},
		{
			name:     "jan 31 clamps to feb 29 in leap year",
			from:     date(2024, time.January, 31),
			expected: date(2024, time.February, 29),
		},
		{
			name:     "jan 31 clamps to feb 28 in common year",
			from:     date(2023, time.January, 31),
			expected: date(2023, time.February, 28),
		},
		{
			name:     "jan 30 clamps to feb 29 in leap year",
			from:     date(2024, time.January, 30),
			expected: date(2024, time.February, 29),
		},
		{
			name:     "last day of february recovers to last day of march",
			from:     date(2024, time.February, 29),
			expected: date(2024, time.March, 31),
		},
		{
			name:     "feb 28 in common year recovers to mar 31",
			from:     date(2023, time.February, 28),
			expected: date(2023, time.March, 31),
		},
		{
			name:     "mar 31 to apr 30",
			from:     date(2024, time.March, 31),
			expected: date(2024, time.April, 30),
		},
		{
			name:     "apr 30 is month end so may 31",
			from:     date(2024, time.April, 30),
			expected: date(2024, time.May, 31),
		},
		{
			name:     "dec crosses year boundary",
			from:     date(2024, time.December, 15),
			expected: date(2025, time.January, 15),
		},
		{
			name:     "dec 31 to jan 31",
			from:     date(2024, time.December, 31),
			expected: date(2025, time.January, 31),
		},
		{
			name:     "feb 28 in leap year is not month end, keeps day",
			from:     date(2024, time.February, 28),
			expected: date(2024, time.March, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextRenewalAfter(tt.from))
		})
	}
}

func TestNextRenewalAfter_MonthEndStaysSticky(t *testing.T) {
	// An end-of-month anchor must keep landing on month ends across a
	// short february instead of drifting down to the 28th forever.
	d := date(2024, time.January, 31)

	expected := []time.Time{
		date(2024, time.February, 29),
		date(2024, time.March, 31),
		date(2024, time.April, 30),
		date(2024, time.May, 31),
		date(2024, time.June, 30),
	}

	for _, want := range expected {
		d = NextRenewalAfter(d)
		assert.Equal(t, want, d)
	}
}

func TestNewSubscription_Validation(t *testing.T) {
	tests := []struct {
		name        string
		userID      uint
		subName     string
		amountCents int64
		renewal     time.Time
		errContains string
	}{
		{
			name:        "missing user",
			userID:      0,
			subName:     "Valid",
			amountCents: 100,
			renewal:     date(2024, time.June, 1),
			errContains: "user ID is required",
		},
		{
			name:        "blank name",
			subName:     "   ",
			userID:      1,
			amountCents: 100,
			renewal:     date(2024, time.June, 1),
			errContains: "name is required",
		},
		{
			name:        "negative amount",
			userID:      1,
			subName:     "Valid",
			amountCents: -1,
			renewal:     date(2024, time.June, 1),
			errContains: "amount cannot be negative",
		},
		{
			name:        "zero renewal date",
			userID:      1,
			subName:     "Valid",
			amountCents: 100,
			errContains: "next renewal date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSubscription(
				tt.userID,
				tt.subName,
				shared.NewMoney(tt.amountCents, "USD"),
				shared.DefaultCategory,
				tt.renewal,
				vo.OriginCustomer,
				"",
			)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestNewSubscription_Defaults(t *testing.T) {
	sub, err := NewSubscription(
		1,
		"  Gym Membership  ",
		shared.NewMoney(0, "USD"),
		shared.DefaultCategory,
		time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC),
		vo.OriginAdmin,
		"",
	)
	require.NoError(t, err)

	assert.Equal(t, "Gym Membership", sub.Name())
	assert.True(t, sub.IsActive())
	assert.Equal(t, 1, sub.Version())
	// Renewal dates are calendar dates, time of day is dropped.
	assert.Equal(t, date(2024, time.March, 10), sub.NextRenewalDate())
}

func TestSubscription_PauseResume(t *testing.T) {
	sub := newTestSubscription(t, date(2024, time.January, 31))

	sub.Pause()
	assert.False(t, sub.IsActive())
	assert.Equal(t, 2, sub.Version())

	// Pausing again is a no-op.
	sub.Pause()
	assert.Equal(t, 2, sub.Version())

	// Resuming after a long pause clamps the pointer to today so the
	// dormant months are never billed.
	today := date(2024, time.June, 15)
	sub.Resume(today)
	assert.True(t, sub.IsActive())
	assert.Equal(t, today, sub.NextRenewalDate())
}

func TestSubscription_ResumeKeepsFuturePointer(t *testing.T) {
	future := date(2030, time.January, 31)
	sub := newTestSubscription(t, future)

	sub.Pause()
	sub.Resume(date(2024, time.June, 15))

	assert.Equal(t, future, sub.NextRenewalDate())
}

func TestSubscription_ResumeWhileActiveIsNoOp(t *testing.T) {
	sub := newTestSubscription(t, date(2024, time.January, 31))

	sub.Resume(date(2024, time.June, 15))

	assert.Equal(t, 1, sub.Version())
	assert.Equal(t, date(2024, time.January, 31), sub.NextRenewalDate())
}

func TestSubscription_AdvanceRenewal(t *testing.T) {
	sub := newTestSubscription(t, date(2024, time.January, 31))

	sub.AdvanceRenewal()

	assert.Equal(t, date(2024, time.February, 29), sub.NextRenewalDate())
	assert.Equal(t, 2, sub.Version())
}

func TestSubscription_DueOn(t *testing.T) {
	sub := newTestSubscription(t, date(2024, time.March, 15))

	assert.False(t, sub.DueOn(date(2024, time.March, 14)))
	assert.True(t, sub.DueOn(date(2024, time.March, 15)))
	assert.True(t, sub.DueOn(date(2024, time.April, 1)))
}

func TestSubscription_BillingDescription(t *testing.T) {
	sub := newTestSubscription(t, date(2024, time.March, 15))
	assert.NotEmpty(t, sub.BillingDescription())

	sub.UpdateNotes("family plan, renews monthly")
	assert.Equal(t, "family plan, renews monthly", sub.BillingDescription())
}

func TestSubscription_Rename(t *testing.T) {
	sub := newTestSubscription(t, date(2024, time.March, 15))

	require.NoError(t, sub.Rename("Streaming Premium"))
	assert.Equal(t, "Streaming Premium", sub.Name())

	err := sub.Rename("  ")
	require.Error(t, err)
}
