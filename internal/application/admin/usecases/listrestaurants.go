package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/admin/dto"
	authdto "github.com/menuqr-inc/menuqr/internal/application/auth/dto"
	subdto "github.com/menuqr-inc/menuqr/internal/application/subscription/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListRestaurantsQuery struct {
	Page     int
	PageSize int
}

// ListRestaurantsUseCase pages through tenants and attaches each one's
// latest ledger row so the admin can see billing state at a glance.
type ListRestaurantsUseCase struct {
	restaurantRepo   restaurant.RestaurantRepository
	subscriptionRepo subscription.SubscriptionRepository
}

func NewListRestaurantsUseCase(restaurantRepo restaurant.RestaurantRepository,
	subscriptionRepo subscription.SubscriptionRepository) *ListRestaurantsUseCase {
	return &ListRestaurantsUseCase{
		restaurantRepo:   restaurantRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (uc *ListRestaurantsUseCase) Execute(ctx context.Context, query ListRestaurantsQuery) (*dto.RestaurantListDTO, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	restaurants, total, err := uc.restaurantRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, errors.NewInternalError("failed to list restaurants", err.Error())
	}

	result := &dto.RestaurantListDTO{
		Restaurants: make([]dto.RestaurantOverviewDTO, 0, len(restaurants)),
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}

	for _, rest := range restaurants {
		row := dto.RestaurantOverviewDTO{Restaurant: authdto.FromRestaurant(rest)}

		latest, err := uc.subscriptionRepo.GetLatestByRestaurantID(ctx, rest.ID())
		if err != nil {
			return nil, errors.NewInternalError("failed to load subscription", err.Error())
		}
		if latest != nil {
			subDTO := subdto.FromSubscription(latest)
			row.Subscription = &subDTO
		}

		result.Restaurants = append(result.Restaurants, row)
	}

	return result, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
