package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/menu/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/menu"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
)

// GetMenuUseCase returns the owner's full menu for the editor. Not gated:
// owners can see and plan their menu while lapsed, they just cannot edit.
type GetMenuUseCase struct {
	categoryRepo menu.CategoryRepository
	itemRepo     menu.ItemRepository
}

func NewGetMenuUseCase(categoryRepo menu.CategoryRepository, itemRepo menu.ItemRepository) *GetMenuUseCase {
	return &GetMenuUseCase{categoryRepo: categoryRepo, itemRepo: itemRepo}
}

func (uc *GetMenuUseCase) Execute(ctx context.Context, restaurantID uint) (*dto.MenuDTO, error) {
	categories, err := uc.categoryRepo.ListByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load categories", err.Error())
	}

	result := &dto.MenuDTO{Categories: []dto.CategoryDTO{}}
	for _, category := range categories {
		items, err := uc.itemRepo.ListByCategoryID(ctx, category.ID())
		if err != nil {
			return nil, errors.NewInternalError("failed to load menu items", err.Error())
		}

		itemDTOs := make([]dto.ItemDTO, 0, len(items))
		for _, item := range items {
			itemDTOs = append(itemDTOs, dto.FromItem(item))
		}
		result.Categories = append(result.Categories, dto.FromCategory(category, itemDTOs))
	}

	return result, nil
}
