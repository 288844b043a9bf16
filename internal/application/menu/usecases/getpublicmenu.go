package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/menu/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/menu"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
)

// GetPublicMenuUseCase serves the diner-facing menu page looked up by slug.
// When the restaurant's subscription has lapsed the response keeps the
// restaurant header so the page can still render branding, but carries no
// menu content and flags the lapse.
type GetPublicMenuUseCase struct {
	restaurantRepo   restaurant.RestaurantRepository
	subscriptionRepo subscription.SubscriptionRepository
	categoryRepo     menu.CategoryRepository
	itemRepo         menu.ItemRepository
	clock            biztime.Clock
}

func NewGetPublicMenuUseCase(restaurantRepo restaurant.RestaurantRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	categoryRepo menu.CategoryRepository, itemRepo menu.ItemRepository,
	clock biztime.Clock) *GetPublicMenuUseCase {

	return &GetPublicMenuUseCase{
		restaurantRepo:   restaurantRepo,
		subscriptionRepo: subscriptionRepo,
		categoryRepo:     categoryRepo,
		itemRepo:         itemRepo,
		clock:            clock,
	}
}

func (uc *GetPublicMenuUseCase) Execute(ctx context.Context, slug string) (*dto.PublicMenuDTO, error) {
	rest, err := uc.restaurantRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NewInternalError("failed to load restaurant", err.Error())
	}
	if rest == nil {
		return nil, errors.NewNotFoundError("restaurant not found")
	}

	current, err := uc.subscriptionRepo.GetCurrentActive(ctx, rest.ID(), uc.clock.Now())
	if err != nil {
		return nil, errors.NewInternalError("failed to check subscription", err.Error())
	}

	result := &dto.PublicMenuDTO{Restaurant: dto.FromRestaurantHeader(rest)}
	if current == nil {
		result.SubscriptionExpired = true
		return result, nil
	}

	categories, err := uc.categoryRepo.ListByRestaurantID(ctx, rest.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load categories", err.Error())
	}

	result.Categories = make([]dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		items, err := uc.itemRepo.ListByCategoryID(ctx, category.ID())
		if err != nil {
			return nil, errors.NewInternalError("failed to load menu items", err.Error())
		}

		itemDTOs := make([]dto.ItemDTO, 0, len(items))
		for _, item := range items {
			if !item.Available() {
				continue
			}
			itemDTOs = append(itemDTOs, dto.FromItem(item))
		}
		result.Categories = append(result.Categories, dto.FromCategory(category, itemDTOs))
	}

	return result, nil
}
