package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"centime/internal/domain/user"
	"centime/internal/infrastructure/persistence/mappers"
	"centime/internal/infrastructure/persistence/models"
	"centime/internal/shared/db"
	"centime/internal/shared/logger"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
	logger logger.Interface
}

func NewProfileRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) user.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewProfileMapper(),
		logger: logger,
	}
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profileEntity *user.Profile) error {
	model, err := r.mapper.ToModel(profileEntity)
	if err != nil {
		r.logger.Errorw("failed to map profile entity to model", "error", err)
		return fmt.Errorf("failed to map profile entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create profile in database", "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if err := profileEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set profile ID", "error", err)
		return fmt.Errorf("failed to set profile ID: %w", err)
	}

	return nil
}

func (r *ProfileRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*user.Profile, error) {
	var model models.ProfileModel

	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get profile by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map profile model to entity", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to map profile: %w", err)
	}

	return entity, nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profileEntity *user.Profile) error {
	model, err := r.mapper.ToModel(profileEntity)
	if err != nil {
		r.logger.Errorw("failed to map profile entity to model", "error", err)
		return fmt.Errorf("failed to map profile entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProfileModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"full_name":  model.FullName,
			"phone":      model.Phone,
			"address":    model.Address,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update profile", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("profile not found")
	}

	return nil
}
