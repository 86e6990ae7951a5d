package mappers

import (
	"fmt"

	shared "centime/internal/domain/shared/valueobjects"
	"centime/internal/domain/subscription"
	vo "centime/internal/domain/subscription/valueobjects"
	"centime/internal/infrastructure/persistence/models"
	"centime/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
	ToModels(entities []*subscription.Subscription) ([]*models.SubscriptionModel, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	origin, err := vo.NewOrigin(model.Origin)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subscription origin: %w", err)
	}

	entity, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:              model.ID,
		UserID:          model.UserID,
		Name:            model.Name,
		Amount:          shared.NewMoney(model.AmountCents, model.Currency),
		Category:        shared.Category(model.Category),
		NextRenewalDate: model.NextRenewalDate,
		Active:          model.Active,
		Origin:          origin,
		Notes:           model.Notes,
		Version:         model.Version,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:              entity.ID(),
		UserID:          entity.UserID(),
		Name:            entity.Name(),
		AmountCents:     entity.Amount().AmountInCents(),
		Currency:        entity.Amount().Currency(),
		Category:        entity.Category().String(),
		NextRenewalDate: entity.NextRenewalDate(),
		Active:          entity.IsActive(),
		Origin:          entity.Origin().String(),
		Notes:           entity.Notes(),
		Version:         entity.Version(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}

func (m *SubscriptionMapperImpl) ToModels(entities []*subscription.Subscription) ([]*models.SubscriptionModel, error) {
	return mapper.MapSlicePtrWithID(entities, m.ToModel, func(entity *subscription.Subscription) uint { return entity.ID() })
}
