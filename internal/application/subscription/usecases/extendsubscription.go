package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/subscription/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/lock"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type ExtendSubscriptionCommand struct {
	RestaurantID uint
	Days         int
}

// ExtendSubscriptionUseCase is the admin courtesy extension: the most
// recent ledger row gets its end date pushed forward by N days from the
// CURRENT end date and is forced back to active. A restaurant with no
// rows at all is an error, not a silent no-op. The read-modify-write
// holds the same per-tenant lock as purchase and grant so a concurrent
// purchase cannot interleave and leave two active rows.
type ExtendSubscriptionUseCase struct {
	subRepo        subscription.SubscriptionRepository
	restaurantRepo restaurant.RestaurantRepository
	tenantMu       *lock.KeyedMutex
	logger         logger.Interface
}

func NewExtendSubscriptionUseCase(subRepo subscription.SubscriptionRepository,
	restaurantRepo restaurant.RestaurantRepository, tenantMu *lock.KeyedMutex,
	log logger.Interface) *ExtendSubscriptionUseCase {
	return &ExtendSubscriptionUseCase{
		subRepo:        subRepo,
		restaurantRepo: restaurantRepo,
		tenantMu:       tenantMu,
		logger:         log,
	}
}

func (uc *ExtendSubscriptionUseCase) Execute(ctx context.Context, cmd ExtendSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	if cmd.Days <= 0 {
		return nil, errors.NewValidationError("days must be positive")
	}

	rest, err := uc.restaurantRepo.GetByID(ctx, cmd.RestaurantID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load restaurant", err.Error())
	}
	if rest == nil {
		return nil, errors.NewNotFoundError("restaurant not found")
	}

	uc.tenantMu.Lock(cmd.RestaurantID)
	defer uc.tenantMu.Unlock(cmd.RestaurantID)

	sub, err := uc.subRepo.GetLatestByRestaurantID(ctx, cmd.RestaurantID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load subscription", err.Error())
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("restaurant has no subscription to extend")
	}

	if err := sub.Extend(cmd.Days); err != nil {
		return nil, errors.NewValidationError("cannot extend subscription", err.Error())
	}

	if err := uc.subRepo.Update(ctx, sub); err != nil {
		return nil, errors.NewInternalError("failed to save subscription", err.Error())
	}

	uc.logger.Infow("subscription extended",
		"restaurant_id", cmd.RestaurantID, "days", cmd.Days, "new_end_date", sub.EndDate())

	result := dto.FromSubscription(sub)
	return &result, nil
}
