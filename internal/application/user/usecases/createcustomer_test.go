package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centime/internal/domain/user"
	"centime/internal/shared/errors"
)

func validCommand() CreateCustomerCommand {
	return CreateCustomerCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		FullName: "Alice Liddell",
		Phone:    "+1-555-0100",
		Address:  "12 Rabbit Hole Ln",
	}
}

func TestCreateCustomerUseCase_Success(t *testing.T) {
	var savedUser *user.User
	var savedProfile *user.Profile
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			savedUser = u
			return u.SetID(7)
		},
	}
	profileRepo := &mockProfileRepository{
		CreateFunc: func(ctx context.Context, profile *user.Profile) error {
			savedProfile = profile
			return profile.SetID(1)
		},
	}

	var grantedSubject, grantedRole string
	enforcer := &mockEnforcer{
		AddRoleForUserFunc: func(userID, role string) error {
			grantedSubject = userID
			grantedRole = role
			return nil
		},
	}

	uc := NewCreateCustomerUseCase(
		userRepo, profileRepo,
		user.NewFactory(plainHasher{}),
		enforcer, newTestTxManager(t), &mockLogger{},
	)
	result, err := uc.Execute(context.Background(), validCommand())

	require.NoError(t, err)
	require.NotNil(t, savedUser)
	require.NotNil(t, savedProfile)
	assert.Equal(t, uint(7), result.User.ID())
	assert.Equal(t, "alice", result.User.Username())
	assert.Equal(t, "hashed:correct-horse", result.User.PasswordHash())

	// Profile is keyed to the persisted user before it is saved.
	assert.Equal(t, uint(7), savedProfile.UserID())
	assert.Equal(t, "Alice Liddell", savedProfile.FullName())

	assert.Equal(t, "7", grantedSubject)
	assert.Equal(t, "customer", grantedRole)
}

func TestCreateCustomerUseCase_UsernameTaken(t *testing.T) {
	userRepo := &mockUserRepository{
		ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateCustomerUseCase(
		userRepo, &mockProfileRepository{},
		user.NewFactory(plainHasher{}),
		&mockEnforcer{}, newTestTxManager(t), &mockLogger{},
	)
	_, err := uc.Execute(context.Background(), validCommand())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateCustomerUseCase_EmailTaken(t *testing.T) {
	userRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateCustomerUseCase(
		userRepo, &mockProfileRepository{},
		user.NewFactory(plainHasher{}),
		&mockEnforcer{}, newTestTxManager(t), &mockLogger{},
	)
	_, err := uc.Execute(context.Background(), validCommand())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateCustomerUseCase_RejectsShortPassword(t *testing.T) {
	userRepo := &mockUserRepository{
		ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
			t.Fatal("validation should run before any repository call")
			return false, nil
		},
	}

	uc := NewCreateCustomerUseCase(
		userRepo, &mockProfileRepository{},
		user.NewFactory(plainHasher{}),
		&mockEnforcer{}, newTestTxManager(t), &mockLogger{},
	)

	cmd := validCommand()
	cmd.Password = "abc"
	_, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateCustomerUseCase_ProfileFailureRollsBackUser(t *testing.T) {
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			return u.SetID(7)
		},
	}
	profileRepo := &mockProfileRepository{
		CreateFunc: func(ctx context.Context, profile *user.Profile) error {
			return assert.AnError
		},
	}

	roleGranted := false
	enforcer := &mockEnforcer{
		AddRoleForUserFunc: func(userID, role string) error {
			roleGranted = true
			return nil
		},
	}

	uc := NewCreateCustomerUseCase(
		userRepo, profileRepo,
		user.NewFactory(plainHasher{}),
		enforcer, newTestTxManager(t), &mockLogger{},
	)
	_, err := uc.Execute(context.Background(), validCommand())

	require.Error(t, err)
	assert.False(t, roleGranted)
}

func TestCreateCustomerUseCase_EnforcerFailureOnlyWarns(t *testing.T) {
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			return u.SetID(7)
		},
	}
	enforcer := &mockEnforcer{
		AddRoleForUserFunc: func(userID, role string) error {
			return assert.AnError
		},
	}

	uc := NewCreateCustomerUseCase(
		userRepo, &mockProfileRepository{},
		user.NewFactory(plainHasher{}),
		enforcer, newTestTxManager(t), &mockLogger{},
	)
	result, err := uc.Execute(context.Background(), validCommand())

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.User.ID())
}
