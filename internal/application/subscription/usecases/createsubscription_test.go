package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centime/internal/domain/subscription"
	vo "centime/internal/domain/subscription/valueobjects"
	"centime/internal/domain/user"
	"centime/internal/shared/authorization"
	"centime/internal/shared/biztime"
	"centime/internal/shared/errors"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func makeUser(t *testing.T, id uint, role authorization.Role) *user.User {
	t.Helper()
	u, err := user.NewUser("alice", "alice@example.com", "hash", role)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func TestCreateSubscriptionUseCase_CustomerCreatesOwn(t *testing.T) {
	owner := makeUser(t, 7, authorization.RoleCustomer)

	var created *subscription.Subscription
	subRepo := &mockSubscriptionRepository{
		CreateFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			created = sub
			return sub.SetID(10)
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			assert.Equal(t, uint(7), id)
			return owner, nil
		},
	}

	uc := NewCreateSubscriptionUseCase(subRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		UserID:          7,
		ActorID:         7,
		ActorRole:       authorization.RoleCustomer,
		Name:            "Streaming Plus",
		AmountCents:     2999,
		Currency:        "USD",
		NextRenewalDate: date(2024, time.January, 31),
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(10), result.Subscription.ID())
	assert.Equal(t, vo.OriginCustomer, created.Origin())
	assert.True(t, created.IsActive())
	assert.Equal(t, date(2024, time.January, 31), created.NextRenewalDate())
}

func TestCreateSubscriptionUseCase_AdminCreatesForCustomer(t *testing.T) {
	owner := makeUser(t, 7, authorization.RoleCustomer)

	var created *subscription.Subscription
	subRepo := &mockSubscriptionRepository{
		CreateFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			created = sub
			return sub.SetID(10)
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return owner, nil
		},
	}

	uc := NewCreateSubscriptionUseCase(subRepo, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		UserID:      7,
		ActorID:     3,
		ActorRole:   authorization.RoleAdmin,
		Name:        "Gym Membership",
		AmountCents: 4500,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(7), created.UserID())
	assert.Equal(t, vo.OriginAdmin, created.Origin())
	// Zero renewal date anchors the first cycle today.
	assert.Equal(t, biztime.TodayUTC(), created.NextRenewalDate())
}

func TestCreateSubscriptionUseCase_CustomerCannotCreateForOthers(t *testing.T) {
	uc := NewCreateSubscriptionUseCase(&mockSubscriptionRepository{}, &mockUserRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		UserID:      7,
		ActorID:     8,
		ActorRole:   authorization.RoleCustomer,
		Name:        "Streaming Plus",
		AmountCents: 2999,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateSubscriptionUseCase_UnknownOwner(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, nil
		},
	}

	uc := NewCreateSubscriptionUseCase(&mockSubscriptionRepository{}, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		UserID:      99,
		ActorID:     3,
		ActorRole:   authorization.RoleAdmin,
		Name:        "Streaming Plus",
		AmountCents: 2999,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateSubscriptionUseCase_InvalidName(t *testing.T) {
	owner := makeUser(t, 7, authorization.RoleCustomer)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return owner, nil
		},
	}

	uc := NewCreateSubscriptionUseCase(&mockSubscriptionRepository{}, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		UserID:      7,
		ActorID:     7,
		ActorRole:   authorization.RoleCustomer,
		Name:        "   ",
		AmountCents: 2999,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
