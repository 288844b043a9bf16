package usecases

import (
	"context"
	"fmt"

	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/payment"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type CreateOrderCommand struct {
	RestaurantID uint
	PlanID       uint
}

// CreateOrderUseCase creates a provider order for a plan purchase. The
// ledger is not touched here; rows are written only after the payment
// signature verifies.
type CreateOrderUseCase struct {
	planRepo subscription.PlanRepository
	gateway  PaymentGateway
	logger   logger.Interface
}

func NewCreateOrderUseCase(planRepo subscription.PlanRepository, gateway PaymentGateway, log logger.Interface) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		planRepo: planRepo,
		gateway:  gateway,
		logger:   log,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*payment.Order, error) {
	if !uc.gateway.Enabled() {
		return nil, errors.NewServiceUnavailableError("payments are not available")
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load plan", err.Error())
	}
	if plan == nil || !plan.IsActive() {
		return nil, errors.NewNotFoundError("plan not found")
	}
	if plan.Price().IsZero() {
		return nil, errors.NewValidationError("free plans cannot be purchased")
	}

	receipt := fmt.Sprintf("rest_%d_plan_%d", cmd.RestaurantID, cmd.PlanID)
	order, err := uc.gateway.CreateOrder(plan.Price(), receipt)
	if err != nil {
		uc.logger.Errorw("failed to create payment order",
			"restaurant_id", cmd.RestaurantID, "plan_id", cmd.PlanID, "error", err)
		return nil, errors.NewInternalError("failed to create payment order")
	}

	uc.logger.Infow("payment order created",
		"restaurant_id", cmd.RestaurantID, "plan_id", cmd.PlanID, "order_id", order.ID)
	return order, nil
}
