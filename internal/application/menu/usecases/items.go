package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/menuqr-inc/menuqr/internal/application/menu/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/menu"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
	"github.com/menuqr-inc/menuqr/internal/shared/services/markdown"
)

type CreateItemCommand struct {
	RestaurantID uint
	CategoryID   uint
	Name         string
	Description  string
	Price        string
	Images       []string
	IsVeg        bool
	SortOrder    int
}

type CreateItemUseCase struct {
	categoryRepo menu.CategoryRepository
	itemRepo     menu.ItemRepository
	sanitizer    *markdown.Service
	logger       logger.Interface
}

func NewCreateItemUseCase(categoryRepo menu.CategoryRepository, itemRepo menu.ItemRepository,
	sanitizer *markdown.Service, log logger.Interface) *CreateItemUseCase {
	return &CreateItemUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		sanitizer:    sanitizer,
		logger:       log,
	}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*dto.ItemDTO, error) {
	if _, err := loadOwnedCategory(ctx, uc.categoryRepo, cmd.RestaurantID, cmd.CategoryID); err != nil {
		return nil, err
	}

	price, err := parsePrice(cmd.Price)
	if err != nil {
		return nil, err
	}

	item, err := menu.NewItem(cmd.CategoryID,
		uc.sanitizer.SanitizePlain(cmd.Name),
		uc.sanitizer.SanitizePlain(cmd.Description),
		price, cmd.Images, cmd.IsVeg, cmd.SortOrder)
	if err != nil {
		return nil, errors.NewValidationError("invalid menu item", err.Error())
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.NewInternalError("failed to create menu item", err.Error())
	}

	uc.logger.Infow("menu item created",
		"item_id", item.ID(), "category_id", cmd.CategoryID, "restaurant_id", cmd.RestaurantID)

	result := dto.FromItem(item)
	return &result, nil
}

type UpdateItemCommand struct {
	RestaurantID uint
	ItemID       uint
	Name         string
	Description  string
	Price        string
	Images       []string
	Available    bool
	IsVeg        bool
	SortOrder    int
}

type UpdateItemUseCase struct {
	categoryRepo menu.CategoryRepository
	itemRepo     menu.ItemRepository
	sanitizer    *markdown.Service
}

func NewUpdateItemUseCase(categoryRepo menu.CategoryRepository, itemRepo menu.ItemRepository,
	sanitizer *markdown.Service) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		sanitizer:    sanitizer,
	}
}

func (uc *UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (*dto.ItemDTO, error) {
	item, err := loadOwnedItem(ctx, uc.categoryRepo, uc.itemRepo, cmd.RestaurantID, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(cmd.Price)
	if err != nil {
		return nil, err
	}

	err = item.Update(uc.sanitizer.SanitizePlain(cmd.Name),
		uc.sanitizer.SanitizePlain(cmd.Description),
		price, cmd.Images, cmd.Available, cmd.IsVeg, cmd.SortOrder)
	if err != nil {
		return nil, errors.NewValidationError("invalid menu item", err.Error())
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, errors.NewInternalError("failed to update menu item", err.Error())
	}

	result := dto.FromItem(item)
	return &result, nil
}

type DeleteItemCommand struct {
	RestaurantID uint
	ItemID       uint
}

type DeleteItemUseCase struct {
	categoryRepo menu.CategoryRepository
	itemRepo     menu.ItemRepository
	logger       logger.Interface
}

func NewDeleteItemUseCase(categoryRepo menu.CategoryRepository, itemRepo menu.ItemRepository,
	log logger.Interface) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		logger:       log,
	}
}

func (uc *DeleteItemUseCase) Execute(ctx context.Context, cmd DeleteItemCommand) error {
	item, err := loadOwnedItem(ctx, uc.categoryRepo, uc.itemRepo, cmd.RestaurantID, cmd.ItemID)
	if err != nil {
		return err
	}

	if err := uc.itemRepo.Delete(ctx, item.ID()); err != nil {
		return errors.NewInternalError("failed to delete menu item", err.Error())
	}

	uc.logger.Infow("menu item deleted", "item_id", cmd.ItemID, "restaurant_id", cmd.RestaurantID)
	return nil
}

// loadOwnedItem walks item -> category to confirm ownership. Items carry no
// restaurant ID of their own.
func loadOwnedItem(ctx context.Context, categoryRepo menu.CategoryRepository,
	itemRepo menu.ItemRepository, restaurantID, itemID uint) (*menu.Item, error) {

	item, err := itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load menu item", err.Error())
	}
	if item == nil {
		return nil, errors.NewNotFoundError("menu item not found")
	}

	if _, err := loadOwnedCategory(ctx, categoryRepo, restaurantID, item.CategoryID()); err != nil {
		return nil, errors.NewNotFoundError("menu item not found")
	}
	return item, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errors.NewValidationError("invalid price", err.Error())
	}
	if price.IsNegative() {
		return decimal.Decimal{}, errors.NewValidationError("price cannot be negative")
	}
	return price, nil
}
