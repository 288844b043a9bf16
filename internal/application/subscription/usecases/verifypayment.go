package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/subscription/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/lock"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type VerifyPaymentCommand struct {
	RestaurantID uint
	PlanID       uint
	OrderID      string
	PaymentID    string
	Signature    string
}

// VerifyPaymentUseCase completes a purchase. The signature must verify
// before anything is written. The write itself is serialized per restaurant
// with a keyed mutex and wrapped in one transaction: expire the tenant's
// active rows, then insert the new active row. That pairing keeps the
// single-active invariant under concurrent purchases.
type VerifyPaymentUseCase struct {
	subRepo   subscription.SubscriptionRepository
	planRepo  subscription.PlanRepository
	gateway   PaymentGateway
	txManager TransactionManager
	tenantMu  *lock.KeyedMutex
	clock     biztime.Clock
	logger    logger.Interface
}

func NewVerifyPaymentUseCase(
	subRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	gateway PaymentGateway,
	txManager TransactionManager,
	tenantMu *lock.KeyedMutex,
	clock biztime.Clock,
	log logger.Interface,
) *VerifyPaymentUseCase {
	return &VerifyPaymentUseCase{
		subRepo:   subRepo,
		planRepo:  planRepo,
		gateway:   gateway,
		txManager: txManager,
		tenantMu:  tenantMu,
		clock:     clock,
		logger:    log,
	}
}

func (uc *VerifyPaymentUseCase) Execute(ctx context.Context, cmd VerifyPaymentCommand) (*dto.SubscriptionDTO, error) {
	if !uc.gateway.Enabled() {
		return nil, errors.NewServiceUnavailableError("payments are not available")
	}

	if !uc.gateway.VerifySignature(cmd.OrderID, cmd.PaymentID, cmd.Signature) {
		uc.logger.Warnw("payment signature rejected",
			"restaurant_id", cmd.RestaurantID, "order_id", cmd.OrderID)
		return nil, errors.NewPaymentVerificationError("payment verification failed")
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load plan", err.Error())
	}
	if plan == nil || !plan.IsActive() {
		return nil, errors.NewNotFoundError("plan not found")
	}

	now := uc.clock.Now()
	sub, err := subscription.NewSubscription(cmd.RestaurantID, plan.Name(), plan.Price(),
		now, plan.DurationDays(), constants.PaymentMethodRazorpay, cmd.PaymentID)
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
		uc.logger.Errorw("failed to record subscription purchase",
			"restaurant_id", cmd.RestaurantID, "plan_id", cmd.PlanID, "error", err)
		return nil, errors.NewInternalError("failed to activate subscription")
	}

	uc.logger.Infow("subscription activated",
		"restaurant_id", cmd.RestaurantID, "plan", plan.Name(), "end_date", sub.EndDate())

	result := dto.FromSubscription(sub)
	return &result, nil
}
