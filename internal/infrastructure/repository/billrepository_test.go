package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"centime/internal/domain/billing"
	"centime/internal/domain/subscription"
	"centime/internal/infrastructure/persistence/models"
)

func persistSubscription(t *testing.T, repo subscription.Repository, userID uint, renewal time.Time) *subscription.Subscription {
	t.Helper()
	sub := createTestSubscription(t, userID, renewal)
	require.NoError(t, repo.Create(context.Background(), sub))
	require.NotZero(t, sub.ID())
	return sub
}

func TestBillRepository_CreateIfAbsent(t *testing.T) {
	gormDB := setupTestDB(t)
	subRepo := NewSubscriptionRepository(gormDB, noopLogger{})
	billRepo := NewBillRepository(gormDB, noopLogger{})
	ctx := context.Background()

	sub := persistSubscription(t, subRepo, 7, testDate(2024, time.March, 31))
	cycle := testDate(2024, time.March, 31)

	first, err := billing.NewBillFromSubscription(sub, cycle)
	require.NoError(t, err)

	inserted, err := billRepo.CreateIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotZero(t, first.ID())

	// A second bill for the same cycle loses quietly.
	second, err := billing.NewBillFromSubscription(sub, cycle)
	require.NoError(t, err)

	inserted, err = billRepo.CreateIfAbsent(ctx, second)
	require.NoError(t, err)
	assert.False(t, inserted)

	// A different cycle is a different natural key.
	next, err := billing.NewBillFromSubscription(sub, testDate(2024, time.April, 30))
	require.NoError(t, err)

	inserted, err = billRepo.CreateIfAbsent(ctx, next)
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestBillRepository_CreateIfAbsentRecoversLostInsertRace(t *testing.T) {
	gormDB := setupTestDB(t)
	subRepo := NewSubscriptionRepository(gormDB, noopLogger{})
	billRepo := NewBillRepository(gormDB, noopLogger{})
	ctx := context.Background()

	sub := persistSubscription(t, subRepo, 7, testDate(2024, time.March, 31))
	cycle := testDate(2024, time.March, 31)

	// Land a competing row for the same cycle after the pre-insert lookup
	// has missed but before the insert statement runs, the way a second
	// generator instance would.
	subID := sub.ID()
	armed := true
	err := gormDB.Callback().Create().Before("gorm:create").Register("competing_generator", func(tx *gorm.DB) {
		if !armed {
			return
		}
		armed = false
		competing := models.BillModel{
			UserID:         7,
			SubscriptionID: &subID,
			Title:          "Streaming Plus",
			AmountCents:    2999,
			Currency:       "USD",
			DueDate:        cycle,
			Category:       "subscription",
			Status:         "unpaid",
		}
		if err := tx.Session(&gorm.Session{NewDB: true}).Create(&competing).Error; err != nil {
			t.Errorf("competing insert failed: %v", err)
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		gormDB.Callback().Create().Remove("competing_generator")
	})

	bill, err := billing.NewBillFromSubscription(sub, cycle)
	require.NoError(t, err)

	// Losing the race is quiet: the cycle counts as already billed.
	inserted, err := billRepo.CreateIfAbsent(ctx, bill)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.False(t, armed, "the competing writer must have run")
	assert.Zero(t, bill.ID())
}

func TestBillRepository_CreateDuplicateCycleFails(t *testing.T) {
	gormDB := setupTestDB(t)
	subRepo := NewSubscriptionRepository(gormDB, noopLogger{})
	billRepo := NewBillRepository(gormDB, noopLogger{})
	ctx := context.Background()

	sub := persistSubscription(t, subRepo, 7, testDate(2024, time.March, 31))
	cycle := testDate(2024, time.March, 31)

	first, err := billing.NewBillFromSubscription(sub, cycle)
	require.NoError(t, err)
	require.NoError(t, billRepo.Create(ctx, first))

	// The plain Create surfaces the uniqueness violation.
	dup, err := billing.NewBillFromSubscription(sub, cycle)
	require.NoError(t, err)

	err = billRepo.Create(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, billing.ErrBillAlreadyExists)
}

func TestBillRepository_DirectBillsBypassCycleUniqueness(t *testing.T) {
	gormDB := setupTestDB(t)
	billRepo := NewBillRepository(gormDB, noopLogger{})
	ctx := context.Background()

	// Admin-assigned bills carry no subscription, so several on the same
	// due date must coexist.
	for i := 0; i < 2; i++ {
		bill := createDirectBill(t, 7, testDate(2024, time.March, 31))
		require.NoError(t, billRepo.Create(ctx, bill))
	}
}

func TestBillRepository_GetBySubscriptionAndDueDate(t *testing.T) {
	gormDB := setupTestDB(t)
	subRepo := NewSubscriptionRepository(gormDB, noopLogger{})
	billRepo := NewBillRepository(gormDB, noopLogger{})
	ctx := context.Background()

	sub := persistSubscription(t, subRepo, 7, testDate(2024, time.March, 31))

	found, err := billRepo.GetBySubscriptionAndDueDate(ctx, sub.ID(), testDate(2024, time.March, 31))
	require.NoError(t, err)
	assert.Nil(t, found)

	bill, err := billing.NewBillFromSubscription(sub, testDate(2024, time.March, 31))
	require.NoError(t, err)
	require.NoError(t, billRepo.Create(ctx, bill))

	found, err = billRepo.GetBySubscriptionAndDueDate(ctx, sub.ID(), testDate(2024, time.March, 31))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, bill.ID(), found.ID())
	assert.Equal(t, testDate(2024, time.March, 31), found.DueDate())
}

func TestBillRepository_UpdatePersistsPayment(t *testing.T) {
	gormDB := setupTestDB(t)
	subRepo := NewSubscriptionRepository(gormDB, noopLogger{})
	billRepo := NewBillRepository(gormDB, noopLogger{})
	ctx := context.Background()

	sub := persistSubscription(t, subRepo, 7, testDate(2024, time.March, 31))
	bill, err := billing.NewBillFromSubscription(sub, testDate(2024, time.March, 31))
	require.NoError(t, err)
	require.NoError(t, billRepo.Create(ctx, bill))

	require.NoError(t, bill.MarkPaid(time.Date(2024, time.April, 2, 9, 30, 0, 0, time.UTC)))
	require.NoError(t, billRepo.Update(ctx, bill))

	reloaded, err := billRepo.GetByID(ctx, bill.ID())
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.IsPaid())
	require.NotNil(t, reloaded.PaidAt())
}

func TestBillRepository_UpdateMissingBill(t *testing.T) {
	gormDB := setupTestDB(t)
	subRepo := NewSubscriptionRepository(gormDB, noopLogger{})
	billRepo := NewBillRepository(gormDB, noopLogger{})
	ctx := context.Background()

	sub := persistSubscription(t, subRepo, 7, testDate(2024, time.March, 31))
	bill, err := billing.NewBillFromSubscription(sub, testDate(2024, time.March, 31))
	require.NoError(t, err)
	require.NoError(t, bill.SetID(999))

	err = billRepo.Update(ctx, bill)
	assert.ErrorIs(t, err, billing.ErrBillNotFound)
}

func TestBillRepository_ListAndCount(t *testing.T) {
	gormDB := setupTestDB(t)
	subRepo := NewSubscriptionRepository(gormDB, noopLogger{})
	billRepo := NewBillRepository(gormDB, noopLogger{})
	ctx := context.Background()

	sub := persistSubscription(t, subRepo, 7, testDate(2024, time.January, 31))
	other := persistSubscription(t, subRepo, 8, testDate(2024, time.January, 31))

	cycles := []time.Time{
		testDate(2024, time.January, 31),
		testDate(2024, time.February, 29),
		testDate(2024, time.March, 31),
	}
	for _, cycle := range cycles {
		bill, err := billing.NewBillFromSubscription(sub, cycle)
		require.NoError(t, err)
		require.NoError(t, billRepo.Create(ctx, bill))
	}
	foreign, err := billing.NewBillFromSubscription(other, cycles[0])
	require.NoError(t, err)
	require.NoError(t, billRepo.Create(ctx, foreign))

	owner := uint(7)
	bills, total, err := billRepo.List(ctx, billing.BillFilter{UserID: &owner})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, bills, 3)
	// Newest due date first.
	assert.Equal(t, testDate(2024, time.March, 31), bills[0].DueDate())

	dueTo := testDate(2024, time.February, 29)
	bills, total, err = billRepo.List(ctx, billing.BillFilter{UserID: &owner, DueTo: &dueTo})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, bills, 2)

	count, err := billRepo.CountUnpaidByUserID(ctx, owner)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
