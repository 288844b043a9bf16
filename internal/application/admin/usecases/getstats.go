// Package usecases implements the admin dashboard operations.
package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/admin/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
	"github.com/menuqr-inc/menuqr/internal/domain/user"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
)

// GetStatsUseCase aggregates the dashboard counters. Active subscriptions are
// counted against the clock, not the stored status, so the number stays
// honest between expiry sweeps.
type GetStatsUseCase struct {
	restaurantRepo   restaurant.RestaurantRepository
	userRepo         user.UserRepository
	subscriptionRepo subscription.SubscriptionRepository
	clock            biztime.Clock
}

func NewGetStatsUseCase(restaurantRepo restaurant.RestaurantRepository,
	userRepo user.UserRepository, subscriptionRepo subscription.SubscriptionRepository,
	clock biztime.Clock) *GetStatsUseCase {

	return &GetStatsUseCase{
		restaurantRepo:   restaurantRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		clock:            clock,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	restaurants, err := uc.restaurantRepo.Count(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count restaurants", err.Error())
	}

	users, err := uc.userRepo.CountByRole(ctx, constants.RoleRestaurant)
	if err != nil {
		return nil, errors.NewInternalError("failed to count users", err.Error())
	}

	active, err := uc.subscriptionRepo.CountActiveAt(ctx, uc.clock.Now())
	if err != nil {
		return nil, errors.NewInternalError("failed to count active subscriptions", err.Error())
	}

	expired, err := uc.subscriptionRepo.CountByStatus(ctx, vo.StatusExpired.String())
	if err != nil {
		return nil, errors.NewInternalError("failed to count expired subscriptions", err.Error())
	}

	return &dto.StatsDTO{
		TotalRestaurants:    restaurants,
		TotalUsers:          users,
		ActiveSubscriptions: active,
		ExpiredSubscription: expired,
	}, nil
}
