package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

// ExpireSubscriptionsUseCase is the sweep run by the worker: bulk-mark
// active rows whose end date has passed. Idempotent; pending rows are
// never touched. Access checks do not depend on the sweep having run,
// it only keeps the stored status in line with the dates.
type ExpireSubscriptionsUseCase struct {
	subRepo subscription.SubscriptionRepository
	clock   biztime.Clock
	logger  logger.Interface
}

func NewExpireSubscriptionsUseCase(subRepo subscription.SubscriptionRepository,
	clock biztime.Clock, log logger.Interface) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subRepo: subRepo,
		clock:   clock,
		logger:  log,
	}
}

func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int64, error) {
	now := uc.clock.Now()

	updated, err := uc.subRepo.ExpireAllPast(ctx, now)
	if err != nil {
		uc.logger.Errorw("subscription expiry sweep failed", "error", err)
		return 0, err
	}

	if updated > 0 {
		uc.logger.Infow("subscription expiry sweep completed", "expired", updated)
	}
	return updated, nil
}
