package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/menuqr-inc/menuqr/internal/application/subscription/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanID       uint
	Name         string
	Price        string
	DurationDays int
	Features     []string
	IsActive     *bool
	BadgeText    string
	BadgeColor   string
	BadgeEnabled bool
}

// UpdatePlanUseCase is the admin plan editor. Existing ledger rows are not
// touched: they carry their own name/price snapshots.
type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, log logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, logger: log}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load plan", err.Error())
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	price, err := decimal.NewFromString(cmd.Price)
	if err != nil {
		return nil, errors.NewValidationError("invalid price", err.Error())
	}

	if err := plan.UpdateDetails(cmd.Name, price, cmd.DurationDays, cmd.Features); err != nil {
		return nil, errors.NewValidationError("invalid plan details", err.Error())
	}

	badge := subscription.Badge{
		Text:    cmd.BadgeText,
		Color:   subscription.BadgeColor(cmd.BadgeColor),
		Enabled: cmd.BadgeEnabled,
	}
	if err := plan.UpdateBadge(badge); err != nil {
		return nil, errors.NewValidationError("invalid badge", err.Error())
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			plan.Activate()
		} else {
			plan.Deactivate()
		}
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("plan name already in use")
		}
		return nil, errors.NewInternalError("failed to save plan", err.Error())
	}

	uc.logger.Infow("plan updated", "plan_id", cmd.PlanID, "name", cmd.Name)

	result := dto.FromPlan(plan)
	return &result, nil
}
