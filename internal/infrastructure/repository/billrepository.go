package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"centime/internal/domain/billing"
	"centime/internal/infrastructure/persistence/mappers"
	"centime/internal/infrastructure/persistence/models"
	"centime/internal/shared/constants"
	"centime/internal/shared/db"
	"centime/internal/shared/errors"
	"centime/internal/shared/logger"
)

type BillRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BillMapper
	logger logger.Interface
}

func NewBillRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) billing.BillRepository {
	return &BillRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewBillMapper(),
		logger: logger,
	}
}

func (r *BillRepositoryImpl) Create(ctx context.Context, billEntity *billing.Bill) error {
	model, err := r.mapper.ToModel(billEntity)
	if err != nil {
		r.logger.Errorw("failed to map bill entity to model", "error", err)
		return fmt.Errorf("failed to map bill entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return billing.ErrBillAlreadyExists
		}
		r.logger.Errorw("failed to create bill in database", "error", err)
		return fmt.Errorf("failed to create bill: %w", err)
	}

	if err := billEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set bill ID", "error", err)
		return fmt.Errorf("failed to set bill ID: %w", err)
	}

	r.logger.Infow("bill created successfully", "id", model.ID, "user_id", model.UserID, "due_date", model.DueDate)
	return nil
}

// CreateIfAbsent relies on the uniq_bill_cycle index as the final arbiter.
// A pre-insert lookup keeps the common already-billed case quiet; a
// duplicate key error on insert means another writer created the cycle
// between the lookup and the insert, which is not a failure.
func (r *BillRepositoryImpl) CreateIfAbsent(ctx context.Context, billEntity *billing.Bill) (bool, error) {
	subscriptionID := billEntity.SubscriptionID()
	if subscriptionID == nil {
		return false, fmt.Errorf("bill has no subscription reference")
	}

	existing, err := r.GetBySubscriptionAndDueDate(ctx, *subscriptionID, billEntity.DueDate())
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	model, err := r.mapper.ToModel(billEntity)
	if err != nil {
		r.logger.Errorw("failed to map bill entity to model", "error", err)
		return false, fmt.Errorf("failed to map bill entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			r.logger.Infow("bill cycle already exists, skipping",
				"subscription_id", *subscriptionID, "due_date", billEntity.DueDate())
			return false, nil
		}
		r.logger.Errorw("failed to create bill in database", "error", err)
		return false, fmt.Errorf("failed to create bill: %w", err)
	}

	if err := billEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set bill ID", "error", err)
		return false, fmt.Errorf("failed to set bill ID: %w", err)
	}

	return true, nil
}

func (r *BillRepositoryImpl) GetByID(ctx context.Context, id uint) (*billing.Bill, error) {
	var model models.BillModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get bill by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map bill model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map bill: %w", err)
	}

	return entity, nil
}

func (r *BillRepositoryImpl) GetBySubscriptionAndDueDate(ctx context.Context, subscriptionID uint, dueDate time.Time) (*billing.Bill, error) {
	var model models.BillModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ? AND due_date = ?", subscriptionID, dueDate).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get bill by subscription and due date",
			"subscription_id", subscriptionID, "due_date", dueDate, "error", err)
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map bill model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map bill: %w", err)
	}

	return entity, nil
}

func (r *BillRepositoryImpl) Update(ctx context.Context, billEntity *billing.Bill) error {
	model, err := r.mapper.ToModel(billEntity)
	if err != nil {
		r.logger.Errorw("failed to map bill entity to model", "error", err)
		return fmt.Errorf("failed to map bill entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BillModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"paid_at":     model.PaidAt,
			"version":     model.Version,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update bill", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update bill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return billing.ErrBillNotFound
	}

	return nil
}

func (r *BillRepositoryImpl) List(ctx context.Context, filter billing.BillFilter) ([]*billing.Bill, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.BillModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.SubscriptionID != nil {
		query = query.Where("subscription_id = ?", *filter.SubscriptionID)
	}
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DueFrom != nil {
		query = query.Where("due_date >= ?", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		query = query.Where("due_date <= ?", *filter.DueTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count bills", "error", err)
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	var modelList []*models.BillModel
	if err := query.
		Order("due_date DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list bills", "error", err)
		return nil, 0, fmt.Errorf("failed to list bills: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map bill models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map bills: %w", err)
	}

	return entities, total, nil
}

func (r *BillRepositoryImpl) CountUnpaidByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BillModel{}).
		Where("user_id = ? AND status = ?", userID, "unpaid").
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count unpaid bills", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to count unpaid bills: %w", err)
	}

	return count, nil
}
