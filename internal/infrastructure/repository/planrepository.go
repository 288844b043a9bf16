package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/mappers"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
	"github.com/menuqr-inc/menuqr/internal/shared/db"
)

type PlanRepository struct {
	db     *gorm.DB
	mapper *mappers.PlanMapper
}

func NewPlanRepository(database *gorm.DB) subscription.PlanRepository {
	return &PlanRepository{
		db:     database,
		mapper: mappers.NewPlanMapper(),
	}
}

func (r *PlanRepository) Create(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	return plan.SetID(model.ID)
}

func (r *PlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.SubscriptionPlanModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PlanRepository) GetByName(ctx context.Context, name string) (*subscription.Plan, error) {
	var model models.SubscriptionPlanModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PlanRepository) Update(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) GetAllActive(ctx context.Context) ([]*subscription.Plan, error) {
	var modelList []models.SubscriptionPlanModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("is_active = ?", true).
		Order("price ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active plans: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *PlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	var modelList []models.SubscriptionPlanModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("price ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *PlanRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.SubscriptionPlanModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count plans: %w", err)
	}
	return count, nil
}

func (r *PlanRepository) toDomainList(modelList []models.SubscriptionPlanModel) ([]*subscription.Plan, error) {
	plans := make([]*subscription.Plan, 0, len(modelList))
	for i := range modelList {
		plan, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
