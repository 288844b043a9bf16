// Package repository contains gorm-backed implementations of the domain
// repository interfaces. All methods honor a transaction carried in the
// context by the TransactionManager.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/mappers"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
	"github.com/menuqr-inc/menuqr/internal/shared/db"
)

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper *mappers.SubscriptionMapper
}

func NewSubscriptionRepository(database *gorm.DB) subscription.SubscriptionRepository {
	return &SubscriptionRepository{
		db:     database,
		mapper: mappers.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := r.mapper.ToModel(sub)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return sub.SetID(model.ID)
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model := r.mapper.ToModel(sub)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) GetCurrentActive(ctx context.Context, restaurantID uint, now time.Time) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("restaurant_id = ? AND status = ? AND end_date > ?",
		restaurantID, vo.StatusActive.String(), now).
		Order("start_date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SubscriptionRepository) GetLatestByRestaurantID(ctx context.Context, restaurantID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("restaurant_id = ?", restaurantID).
		Order("start_date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest subscription: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SubscriptionRepository) ListByRestaurantID(ctx context.Context, restaurantID uint) ([]*subscription.Subscription, error) {
	var modelList []models.SubscriptionModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("restaurant_id = ?", restaurantID).
		Order("start_date DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *SubscriptionRepository) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{})

	if filter.RestaurantID != nil {
		tx = tx.Where("restaurant_id = ?", *filter.RestaurantID)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var modelList []models.SubscriptionModel
	err := tx.Order("start_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs, err := r.toDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *SubscriptionRepository) ExpireActiveByRestaurantID(ctx context.Context, restaurantID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.SubscriptionModel{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, vo.StatusActive.String()).
		Update("status", vo.StatusExpired.String()).Error
	if err != nil {
		return fmt.Errorf("failed to expire active subscriptions: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) ExpireAllPast(ctx context.Context, now time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SubscriptionModel{}).
		Where("status = ? AND end_date < ?", vo.StatusActive.String(), now).
		Update("status", vo.StatusExpired.String())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire past subscriptions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SubscriptionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.SubscriptionModel{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}

func (r *SubscriptionRepository) CountActiveAt(ctx context.Context, now time.Time) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.SubscriptionModel{}).
		Where("status = ? AND end_date > ?", vo.StatusActive.String(), now).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active subscriptions: %w", err)
	}
	return count, nil
}

func (r *SubscriptionRepository) toDomainList(modelList []models.SubscriptionModel) ([]*subscription.Subscription, error) {
	subs := make([]*subscription.Subscription, 0, len(modelList))
	for i := range modelList {
		sub, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
