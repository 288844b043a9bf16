package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/subscription/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
)

// GetSubscriptionUseCase returns the tenant's current usable subscription
// plus the full ledger history.
type GetSubscriptionUseCase struct {
	subRepo subscription.SubscriptionRepository
	clock   biztime.Clock
}

func NewGetSubscriptionUseCase(subRepo subscription.SubscriptionRepository, clock biztime.Clock) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{subRepo: subRepo, clock: clock}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, restaurantID uint) (*dto.SubscriptionStatusDTO, error) {
	current, err := uc.subRepo.GetCurrentActive(ctx, restaurantID, uc.clock.Now())
	if err != nil {
		return nil, errors.NewInternalError("failed to load subscription", err.Error())
	}

	history, err := uc.subRepo.ListByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load subscription history", err.Error())
	}

	result := &dto.SubscriptionStatusDTO{
		History: dto.FromSubscriptions(history),
	}
	if current != nil {
		d := dto.FromSubscription(current)
		result.Current = &d
	}
	return result, nil
}
