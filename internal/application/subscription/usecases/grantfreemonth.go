package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/subscription/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/lock"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type GrantFreeMonthCommand struct {
	RestaurantID uint
}

// GrantFreeMonthUseCase is the admin goodwill grant. It requires the
// reserved "Free" plan and writes the ledger the same way a purchase does:
// expire the tenant's active rows, then insert the new active row, inside
// one transaction serialized per tenant.
type GrantFreeMonthUseCase struct {
	subRepo        subscription.SubscriptionRepository
	planRepo       subscription.PlanRepository
	restaurantRepo restaurant.RestaurantRepository
	txManager      TransactionManager
	tenantMu       *lock.KeyedMutex
	clock          biztime.Clock
	logger         logger.Interface
}

func NewGrantFreeMonthUseCase(
	subRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	restaurantRepo restaurant.RestaurantRepository,
	txManager TransactionManager,
	tenantMu *lock.KeyedMutex,
	clock biztime.Clock,
	log logger.Interface,
) *GrantFreeMonthUseCase {
	return &GrantFreeMonthUseCase{
		subRepo:        subRepo,
		planRepo:       planRepo,
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		tenantMu:       tenantMu,
		clock:          clock,
		logger:         log,
	}
}

func (uc *GrantFreeMonthUseCase) Execute(ctx context.Context, cmd GrantFreeMonthCommand) (*dto.SubscriptionDTO, error) {
	rest, err := uc.restaurantRepo.GetByID(ctx, cmd.RestaurantID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load restaurant", err.Error())
	}
	if rest == nil {
		return nil, errors.NewNotFoundError("restaurant not found")
	}

	plan, err := uc.planRepo.GetByName(ctx, constants.FreePlanName)
	if err != nil {
		return nil, errors.NewInternalError("failed to load free plan", err.Error())
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("free plan not configured",
			"seed the plan catalog to enable free month grants")
	}

	now := uc.clock.Now()
	sub, err := subscription.NewSubscription(cmd.RestaurantID, plan.Name(), plan.Price(),
		now, plan.DurationDays(), constants.PaymentMethodManual, "")
	if err != nil {
		return nil, errors.NewValidationError("invalid subscription", err.Error())
	}

	uc.tenantMu.Lock(cmd.RestaurantID)
	defer uc.tenantMu.Unlock(cmd.RestaurantID)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.subRepo.ExpireActiveByRestaurantID(txCtx, cmd.RestaurantID); err != nil {
			return err
		}
		return uc.subRepo.Create(txCtx, sub)
	})
	if err != nil {
		uc.logger.Errorw("failed to grant free month",
			"restaurant_id", cmd.RestaurantID, "error", err)
		return nil, errors.NewInternalError("failed to grant free month")
	}

	uc.logger.Infow("free month granted",
		"restaurant_id", cmd.RestaurantID, "end_date", sub.EndDate())

	result := dto.FromSubscription(sub)
	return &result, nil
}
