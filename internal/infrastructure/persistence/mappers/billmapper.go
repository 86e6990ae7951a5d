package mappers

import (
	"fmt"

	"centime/internal/domain/billing"
	vo "centime/internal/domain/billing/valueobjects"
	shared "centime/internal/domain/shared/valueobjects"
	"centime/internal/infrastructure/persistence/models"
	"centime/internal/shared/mapper"
)

type BillMapper interface {
	ToEntity(model *models.BillModel) (*billing.Bill, error)
	ToModel(entity *billing.Bill) (*models.BillModel, error)
	ToEntities(models []*models.BillModel) ([]*billing.Bill, error)
	ToModels(entities []*billing.Bill) ([]*models.BillModel, error)
}

type BillMapperImpl struct{}

func NewBillMapper() BillMapper {
	return &BillMapperImpl{}
}

func (m *BillMapperImpl) ToEntity(model *models.BillModel) (*billing.Bill, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := billing.ReconstructBill(billing.BillReconstructParams{
		ID:             model.ID,
		UserID:         model.UserID,
		SubscriptionID: model.SubscriptionID,
		Title:          model.Title,
		Description:    model.Description,
		Amount:         shared.NewMoney(model.AmountCents, model.Currency),
		DueDate:        model.DueDate,
		Category:       shared.Category(model.Category),
		Status:         vo.BillStatus(model.Status),
		CreatedBy:      model.CreatedBy,
		PaidAt:         model.PaidAt,
		Version:        model.Version,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct bill entity: %w", err)
	}

	return entity, nil
}

func (m *BillMapperImpl) ToModel(entity *billing.Bill) (*models.BillModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.BillModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		SubscriptionID: entity.SubscriptionID(),
		Title:          entity.Title(),
		Description:    entity.Description(),
		AmountCents:    entity.Amount().AmountInCents(),
		Currency:       entity.Amount().Currency(),
		DueDate:        entity.DueDate(),
		Category:       entity.Category().String(),
		Status:         entity.Status().String(),
		CreatedBy:      entity.CreatedBy(),
		PaidAt:         entity.PaidAt(),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *BillMapperImpl) ToEntities(modelList []*models.BillModel) ([]*billing.Bill, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.BillModel) uint { return model.ID })
}

func (m *BillMapperImpl) ToModels(entities []*billing.Bill) ([]*models.BillModel, error) {
	return mapper.MapSlicePtrWithID(entities, m.ToModel, func(entity *billing.Bill) uint { return entity.ID() })
}
