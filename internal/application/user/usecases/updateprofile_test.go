package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centime/internal/domain/user"
	"centime/internal/shared/authorization"
	"centime/internal/shared/errors"
)

func TestUpdateProfileUseCase_OwnerUpdates(t *testing.T) {
	profile, err := user.NewProfile(7, "Alice Liddell", "+1-555-0100", "12 Rabbit Hole Ln")
	require.NoError(t, err)

	var saved *user.Profile
	profileRepo := &mockProfileRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*user.Profile, error) {
			return profile, nil
		},
		UpdateFunc: func(ctx context.Context, p *user.Profile) error {
			saved = p
			return nil
		},
	}

	uc := NewUpdateProfileUseCase(profileRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateProfileCommand{
		UserID:    7,
		ActorID:   7,
		ActorRole: authorization.RoleCustomer,
		FullName:  "Alice Kingsleigh",
		Phone:     "+1-555-0199",
		Address:   "1 Wonderland Way",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Alice Kingsleigh", result.Profile.FullName())
	assert.Equal(t, "+1-555-0199", result.Profile.Phone())
	assert.Equal(t, "1 Wonderland Way", result.Profile.Address())
}

func TestUpdateProfileUseCase_ForeignProfile(t *testing.T) {
	uc := NewUpdateProfileUseCase(&mockProfileRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateProfileCommand{
		UserID:    7,
		ActorID:   8,
		ActorRole: authorization.RoleCustomer,
		FullName:  "Mallory",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestUpdateProfileUseCase_MissingProfile(t *testing.T) {
	uc := NewUpdateProfileUseCase(&mockProfileRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateProfileCommand{
		UserID:    7,
		ActorID:   7,
		ActorRole: authorization.RoleCustomer,
		FullName:  "Alice",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
