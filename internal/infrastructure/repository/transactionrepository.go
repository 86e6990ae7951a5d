package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"centime/internal/domain/billing"
	"centime/internal/infrastructure/persistence/mappers"
	"centime/internal/infrastructure/persistence/models"
	"centime/internal/shared/constants"
	"centime/internal/shared/db"
	"centime/internal/shared/logger"
)

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TransactionMapper
	logger logger.Interface
}

func NewTransactionRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) billing.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewTransactionMapper(),
		logger: logger,
	}
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, transactionEntity *billing.Transaction) error {
	model, err := r.mapper.ToModel(transactionEntity)
	if err != nil {
		r.logger.Errorw("failed to map transaction entity to model", "error", err)
		return fmt.Errorf("failed to map transaction entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create transaction in database", "error", err)
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := transactionEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set transaction ID", "error", err)
		return fmt.Errorf("failed to set transaction ID: %w", err)
	}

	r.logger.Infow("transaction created successfully", "id", model.ID, "bill_id", model.BillID)
	return nil
}

func (r *TransactionRepositoryImpl) GetByID(ctx context.Context, id uint) (*billing.Transaction, error) {
	var model models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get transaction by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map transaction model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map transaction: %w", err)
	}

	return entity, nil
}

func (r *TransactionRepositoryImpl) GetLatestByBillID(ctx context.Context, billID uint) (*billing.Transaction, error) {
	var model models.TransactionModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("bill_id = ?", billID).
		Order("payment_date DESC, id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get latest transaction for bill", "bill_id", billID, "error", err)
		return nil, fmt.Errorf("failed to get latest transaction: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map transaction model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map transaction: %w", err)
	}

	return entity, nil
}

func (r *TransactionRepositoryImpl) List(ctx context.Context, filter billing.TransactionFilter) ([]*billing.Transaction, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TransactionModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.BillID != nil {
		query = query.Where("bill_id = ?", *filter.BillID)
	}
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("payment_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("payment_date <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count transactions", "error", err)
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	var modelList []*models.TransactionModel
	if err := query.
		Order("payment_date DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list transactions", "error", err)
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map transaction models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map transactions: %w", err)
	}

	return entities, total, nil
}

func (r *TransactionRepositoryImpl) CountByStatus(ctx context.Context, userID uint, status string) (int64, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TransactionModel{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count transactions by status", "user_id", userID, "status", status, "error", err)
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}

func (r *TransactionRepositoryImpl) SumAmountByUserID(ctx context.Context, userID uint) (int64, error) {
	var sum *int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TransactionModel{}).
		Select("SUM(amount_cents)").
		Where("user_id = ? AND status = ?", userID, "success").
		Scan(&sum).Error
	if err != nil {
		r.logger.Errorw("failed to sum transaction amounts", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}

	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
