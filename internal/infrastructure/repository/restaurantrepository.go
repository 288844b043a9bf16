package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/mappers"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
	"github.com/menuqr-inc/menuqr/internal/shared/db"
)

type RestaurantRepository struct {
	db     *gorm.DB
	mapper *mappers.RestaurantMapper
}

func NewRestaurantRepository(database *gorm.DB) restaurant.RestaurantRepository {
	return &RestaurantRepository{
		db:     database,
		mapper: mappers.NewRestaurantMapper(),
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *restaurant.Restaurant) error {
	model := r.mapper.ToModel(rest)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	return rest.SetID(model.ID)
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id uint) (*restaurant.Restaurant, error) {
	var model models.RestaurantModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RestaurantRepository) GetByUserID(ctx context.Context, userID uint) (*restaurant.Restaurant, error) {
	var model models.RestaurantModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get restaurant by user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RestaurantRepository) GetBySlug(ctx context.Context, slug string) (*restaurant.Restaurant, error) {
	var model models.RestaurantModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get restaurant by slug: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RestaurantRepository) Update(ctx context.Context, rest *restaurant.Restaurant) error {
	model := r.mapper.ToModel(rest)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}
	return nil
}

func (r *RestaurantRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.RestaurantModel{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return count > 0, nil
}

func (r *RestaurantRepository) List(ctx context.Context, page, pageSize int) ([]*restaurant.Restaurant, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.RestaurantModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var modelList []models.RestaurantModel
	err := tx.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list restaurants: %w", err)
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(modelList))
	for i := range modelList {
		rest, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, total, nil
}

func (r *RestaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.RestaurantModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return count, nil
}
