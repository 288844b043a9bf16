package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/subscription/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
)

// ListPlansUseCase returns subscription plans. The public listing shows only
// active plans ordered by price ascending; the admin listing includes
// retired ones.
type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
}

func NewListPlansUseCase(planRepo subscription.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, includeInactive bool) ([]dto.PlanDTO, error) {
	var (
		plans []*subscription.Plan
		err   error
	)
	if includeInactive {
		plans, err = uc.planRepo.List(ctx)
	} else {
		plans, err = uc.planRepo.GetAllActive(ctx)
	}
	if err != nil {
		return nil, errors.NewInternalError("failed to list plans", err.Error())
	}

	return dto.FromPlans(plans), nil
}
