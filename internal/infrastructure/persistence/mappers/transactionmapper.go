package mappers

import (
	"fmt"

	"centime/internal/domain/billing"
	vo "centime/internal/domain/billing/valueobjects"
	shared "centime/internal/domain/shared/valueobjects"
	"centime/internal/infrastructure/persistence/models"
	"centime/internal/shared/mapper"
)

type TransactionMapper interface {
	ToEntity(model *models.TransactionModel) (*billing.Transaction, error)
	ToModel(entity *billing.Transaction) (*models.TransactionModel, error)
	ToEntities(models []*models.TransactionModel) ([]*billing.Transaction, error)
}

type TransactionMapperImpl struct{}

func NewTransactionMapper() TransactionMapper {
	return &TransactionMapperImpl{}
}

func (m *TransactionMapperImpl) ToEntity(model *models.TransactionModel) (*billing.Transaction, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := billing.ReconstructTransaction(billing.TransactionReconstructParams{
		ID:          model.ID,
		UserID:      model.UserID,
		BillID:      model.BillID,
		Amount:      shared.NewMoney(model.AmountCents, model.Currency),
		PaymentDate: model.PaymentDate,
		Method:      vo.PaymentMethod(model.Method),
		Status:      vo.TransactionStatus(model.Status),
		ProcessedBy: model.ProcessedBy,
		CreatedAt:   model.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct transaction entity: %w", err)
	}

	return entity, nil
}

func (m *TransactionMapperImpl) ToModel(entity *billing.Transaction) (*models.TransactionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TransactionModel{
		ID:          entity.ID(),
		UserID:      entity.UserID(),
		BillID:      entity.BillID(),
		AmountCents: entity.Amount().AmountInCents(),
		Currency:    entity.Amount().Currency(),
		PaymentDate: entity.PaymentDate(),
		Method:      entity.Method().String(),
		Status:      entity.Status().String(),
		ProcessedBy: entity.ProcessedBy(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *TransactionMapperImpl) ToEntities(modelList []*models.TransactionModel) ([]*billing.Transaction, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.TransactionModel) uint { return model.ID })
}
