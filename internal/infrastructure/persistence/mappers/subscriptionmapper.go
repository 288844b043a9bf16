package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	vo "github.com/menuqr-inc/menuqr/internal/domain/subscription/valueobjects"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	return subscription.ReconstructSubscription(
		model.ID,
		model.RestaurantID,
		model.PlanName,
		model.Price,
		model.StartDate,
		model.EndDate,
		vo.SubscriptionStatus(model.Status),
		model.PaymentMethod,
		model.TransactionID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SubscriptionMapper) ToModel(s *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:            s.ID(),
		RestaurantID:  s.RestaurantID(),
		PlanName:      s.PlanName(),
		Price:         s.Price(),
		StartDate:     s.StartDate(),
		EndDate:       s.EndDate(),
		Status:        s.Status().String(),
		PaymentMethod: s.PaymentMethod(),
		TransactionID: s.TransactionID(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToDomain(model *models.SubscriptionPlanModel) (*subscription.Plan, error) {
	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan features: %w", err)
		}
	}

	badge := subscription.Badge{
		Text:    model.BadgeText,
		Color:   subscription.BadgeColor(model.BadgeColor),
		Enabled: model.BadgeEnabled,
	}

	return subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.Price,
		model.DurationDays,
		features,
		model.IsActive,
		badge,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *PlanMapper) ToModel(p *subscription.Plan) (*models.SubscriptionPlanModel, error) {
	features, err := json.Marshal(p.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan features: %w", err)
	}

	return &models.SubscriptionPlanModel{
		ID:           p.ID(),
		Name:         p.Name(),
		Price:        p.Price(),
		DurationDays: p.DurationDays(),
		Features:     datatypes.JSON(features),
		IsActive:     p.IsActive(),
		BadgeText:    p.Badge().Text,
		BadgeColor:   string(p.Badge().Color),
		BadgeEnabled: p.Badge().Enabled,
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}, nil
}
