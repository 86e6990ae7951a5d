package mappers

import (
	"fmt"

	"centime/internal/domain/user"
	"centime/internal/infrastructure/persistence/models"
)

type ProfileMapper interface {
	ToEntity(model *models.ProfileModel) (*user.Profile, error)
	ToModel(entity *user.Profile) (*models.ProfileModel, error)
}

type ProfileMapperImpl struct{}

func NewProfileMapper() ProfileMapper {
	return &ProfileMapperImpl{}
}

func (m *ProfileMapperImpl) ToEntity(model *models.ProfileModel) (*user.Profile, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructProfile(user.ProfileReconstructParams{
		ID:        model.ID,
		UserID:    model.UserID,
		FullName:  model.FullName,
		Phone:     model.Phone,
		Address:   model.Address,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct profile entity: %w", err)
	}

	return entity, nil
}

func (m *ProfileMapperImpl) ToModel(entity *user.Profile) (*models.ProfileModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ProfileModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		FullName:  entity.FullName(),
		Phone:     entity.Phone(),
		Address:   entity.Address(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}
