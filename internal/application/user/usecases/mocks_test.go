package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"centime/internal/domain/billing"
	"centime/internal/domain/user"
	"centime/internal/shared/db"
	"centime/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	ListCustomersFunc    func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) ListCustomers(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	if m.ListCustomersFunc != nil {
		return m.ListCustomersFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

type mockProfileRepository struct {
	CreateFunc      func(ctx context.Context, profile *user.Profile) error
	GetByUserIDFunc func(ctx context.Context, userID uint) (*user.Profile, error)
	UpdateFunc      func(ctx context.Context, profile *user.Profile) error
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *user.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) GetByUserID(ctx context.Context, userID uint) (*user.Profile, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepository) Update(ctx context.Context, profile *user.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, profile)
	}
	return nil
}

type mockBillRepository struct {
	CountUnpaidByUserIDFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockBillRepository) Create(ctx context.Context, bill *billing.Bill) error { return nil }
func (m *mockBillRepository) CreateIfAbsent(ctx context.Context, bill *billing.Bill) (bool, error) {
	return false, nil
}
func (m *mockBillRepository) GetByID(ctx context.Context, id uint) (*billing.Bill, error) {
	return nil, nil
}
func (m *mockBillRepository) GetBySubscriptionAndDueDate(ctx context.Context, subscriptionID uint, dueDate time.Time) (*billing.Bill, error) {
	return nil, nil
}
func (m *mockBillRepository) Update(ctx context.Context, bill *billing.Bill) error { return nil }
func (m *mockBillRepository) List(ctx context.Context, filter billing.BillFilter) ([]*billing.Bill, int64, error) {
	return nil, 0, nil
}
func (m *mockBillRepository) CountUnpaidByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnpaidByUserIDFunc != nil {
		return m.CountUnpaidByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

type mockEnforcer struct {
	EnforceFunc        func(subject, resource, action string) (bool, error)
	AddRoleForUserFunc func(userID, role string) error
	LoadPolicyFunc     func() error
}

func (m *mockEnforcer) Enforce(subject, resource, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(subject, resource, action)
	}
	return true, nil
}

func (m *mockEnforcer) AddRoleForUser(userID, role string) error {
	if m.AddRoleForUserFunc != nil {
		return m.AddRoleForUserFunc(userID, role)
	}
	return nil
}

func (m *mockEnforcer) LoadPolicy() error {
	if m.LoadPolicyFunc != nil {
		return m.LoadPolicyFunc()
	}
	return nil
}

// plainHasher avoids bcrypt cost in tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(hashed, password string) error {
	if hashed != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}
