package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/admin/dto"
	subdto "github.com/menuqr-inc/menuqr/internal/application/subscription/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
)

type ListSubscriptionsQuery struct {
	RestaurantID *uint
	Status       *string
	Page         int
	PageSize     int
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
}

func NewListSubscriptionsUseCase(subscriptionRepo subscription.SubscriptionRepository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{subscriptionRepo: subscriptionRepo}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, query ListSubscriptionsQuery) (*dto.SubscriptionListDTO, error) {
	if query.Status != nil && !vo.ValidStatuses[vo.SubscriptionStatus(*query.Status)] {
		return nil, errors.NewValidationError("invalid status filter", *query.Status)
	}

	page, pageSize := normalizePage(query.Page, query.PageSize)
	filter := subscription.SubscriptionFilter{
		RestaurantID: query.RestaurantID,
		Status:       query.Status,
		Page:         page,
		PageSize:     pageSize,
	}

	rows, total, err := uc.subscriptionRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError("failed to list subscriptions", err.Error())
	}

	result := &dto.SubscriptionListDTO{
		Subscriptions: make([]subdto.SubscriptionDTO, 0, len(rows)),
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}
	for _, row := range rows {
		result.Subscriptions = append(result.Subscriptions, subdto.FromSubscription(row))
	}

	return result, nil
}
