package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/menuqr-inc/menuqr/internal/domain/menu"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/mappers"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
	"github.com/menuqr-inc/menuqr/internal/shared/db"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper *mappers.MenuMapper
}

func NewCategoryRepository(database *gorm.DB) menu.CategoryRepository {
	return &CategoryRepository{
		db:     database,
		mapper: mappers.NewMenuMapper(),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *menu.Category) error {
	model := r.mapper.CategoryToModel(category)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return category.SetID(model.ID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*menu.Category, error) {
	var model models.CategoryModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return r.mapper.CategoryToDomain(&model)
}

func (r *CategoryRepository) ListByRestaurantID(ctx context.Context, restaurantID uint) ([]*menu.Category, error) {
	var modelList []models.CategoryModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("restaurant_id = ?", restaurantID).
		Order("sort_order ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*menu.Category, 0, len(modelList))
	for i := range modelList {
		category, err := r.mapper.CategoryToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *menu.Category) error {
	model := r.mapper.CategoryToModel(category)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.CategoryModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

type ItemRepository struct {
	db     *gorm.DB
	mapper *mappers.MenuMapper
}

func NewItemRepository(database *gorm.DB) menu.ItemRepository {
	return &ItemRepository{
		db:     database,
		mapper: mappers.NewMenuMapper(),
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *menu.Item) error {
	model, err := r.mapper.ItemToModel(item)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return item.SetID(model.ID)
}

func (r *ItemRepository) GetByID(ctx context.Context, id uint) (*menu.Item, error) {
	var model models.MenuItemModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return r.mapper.ItemToDomain(&model)
}

func (r *ItemRepository) ListByCategoryID(ctx context.Context, categoryID uint) ([]*menu.Item, error) {
	var modelList []models.MenuItemModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("category_id = ?", categoryID).
		Order("sort_order ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ItemRepository) ListByRestaurantID(ctx context.Context, restaurantID uint) ([]*menu.Item, error) {
	var modelList []models.MenuItemModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Joins("JOIN categories ON categories.id = menu_items.category_id").
		Where("categories.restaurant_id = ?", restaurantID).
		Order("menu_items.sort_order ASC, menu_items.id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items for restaurant: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ItemRepository) Update(ctx context.Context, item *menu.Item) error {
	model, err := r.mapper.ItemToModel(item)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.MenuItemModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

func (r *ItemRepository) DeleteByCategoryID(ctx context.Context, categoryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("category_id = ?", categoryID).
		Delete(&models.MenuItemModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete menu items by category: %w", err)
	}
	return nil
}

func (r *ItemRepository) toDomainList(modelList []models.MenuItemModel) ([]*menu.Item, error) {
	items := make([]*menu.Item, 0, len(modelList))
	for i := range modelList {
		item, err := r.mapper.ItemToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
