package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/menu/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/menu"
	"github.com/menuqr-inc/menuqr/internal/shared/db"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
	"github.com/menuqr-inc/menuqr/internal/shared/services/markdown"
)

type CreateCategoryCommand struct {
	RestaurantID uint
	Name         string
	SortOrder    int
}

type CreateCategoryUseCase struct {
	categoryRepo menu.CategoryRepository
	sanitizer    *markdown.Service
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo menu.CategoryRepository,
	sanitizer *markdown.Service, log logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		sanitizer:    sanitizer,
		logger:       log,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	category, err := menu.NewCategory(cmd.RestaurantID, uc.sanitizer.SanitizePlain(cmd.Name), cmd.SortOrder)
	if err != nil {
		return nil, errors.NewValidationError("invalid category", err.Error())
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.NewInternalError("failed to create category", err.Error())
	}

	uc.logger.Infow("category created",
		"category_id", category.ID(), "restaurant_id", cmd.RestaurantID)

	result := dto.FromCategory(category, nil)
	return &result, nil
}

type UpdateCategoryCommand struct {
	RestaurantID uint
	CategoryID   uint
	Name         string
	SortOrder    int
}

type UpdateCategoryUseCase struct {
	categoryRepo menu.CategoryRepository
	sanitizer    *markdown.Service
}

func NewUpdateCategoryUseCase(categoryRepo menu.CategoryRepository,
	sanitizer *markdown.Service) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo, sanitizer: sanitizer}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	category, err := loadOwnedCategory(ctx, uc.categoryRepo, cmd.RestaurantID, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := category.Update(uc.sanitizer.SanitizePlain(cmd.Name), cmd.SortOrder); err != nil {
		return nil, errors.NewValidationError("invalid category", err.Error())
	}
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.NewInternalError("failed to update category", err.Error())
	}

	result := dto.FromCategory(category, nil)
	return &result, nil
}

type DeleteCategoryCommand struct {
	RestaurantID uint
	CategoryID   uint
}

// DeleteCategoryUseCase removes a category and all its items in one
// transaction so the menu never shows orphaned items.
type DeleteCategoryUseCase struct {
	categoryRepo menu.CategoryRepository
	itemRepo     menu.ItemRepository
	txManager    *db.TransactionManager
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(categoryRepo menu.CategoryRepository, itemRepo menu.ItemRepository,
	txManager *db.TransactionManager, log logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		txManager:    txManager,
		logger:       log,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	category, err := loadOwnedCategory(ctx, uc.categoryRepo, cmd.RestaurantID, cmd.CategoryID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.itemRepo.DeleteByCategoryID(txCtx, category.ID()); err != nil {
			return err
		}
		return uc.categoryRepo.Delete(txCtx, category.ID())
	})
	if err != nil {
		return errors.NewInternalError("failed to delete category", err.Error())
	}

	uc.logger.Infow("category deleted",
		"category_id", cmd.CategoryID, "restaurant_id", cmd.RestaurantID)
	return nil
}

// loadOwnedCategory fetches the category and confirms it belongs to the
// caller's restaurant. Foreign categories look like 404s, not 403s, so IDs
// cannot be probed.
func loadOwnedCategory(ctx context.Context, repo menu.CategoryRepository,
	restaurantID, categoryID uint) (*menu.Category, error) {

	category, err := repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load category", err.Error())
	}
	if category == nil || category.RestaurantID() != restaurantID {
		return nil, errors.NewNotFoundError("category not found")
	}
	return category, nil
}
