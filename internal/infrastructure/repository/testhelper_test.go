package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"centime/internal/domain/billing"
	shared "centime/internal/domain/shared/valueobjects"
	"centime/internal/domain/subscription"
	subvo "centime/internal/domain/subscription/valueobjects"
	"centime/internal/infrastructure/persistence/models"
	"centime/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = gormDB.AutoMigrate(
		&models.UserModel{},
		&models.ProfileModel{},
		&models.SubscriptionModel{},
		&models.BillModel{},
		&models.TransactionModel{},
	)
	require.NoError(t, err)

	return gormDB
}

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func createTestSubscription(t *testing.T, userID uint, renewal time.Time) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(
		userID,
		"Streaming Plus",
		shared.NewMoney(2999, "USD"),
		shared.DefaultCategory,
		renewal,
		subvo.OriginCustomer,
		"",
	)
	require.NoError(t, err)
	return sub
}

func createDirectBill(t *testing.T, userID uint, dueDate time.Time) *billing.Bill {
	t.Helper()
	bill, err := billing.NewBill(
		userID,
		"Onboarding fee",
		"one-time setup",
		shared.NewMoney(5000, "USD"),
		dueDate,
		shared.DefaultCategory,
		nil,
	)
	require.NoError(t, err)
	return bill
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
