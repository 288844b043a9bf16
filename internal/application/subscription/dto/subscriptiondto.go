// Package dto defines the transport representations of subscription data.
package dto

import (
	"time"

	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
)

type BadgeDTO struct {
	Text    string `json:"text"`
	Color   string `json:"color"`
	Enabled bool   `json:"enabled"`
}

type PlanDTO struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	DurationDays int      `json:"duration_days"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"is_active"`
	Badge        BadgeDTO `json:"badge"`
}

type SubscriptionDTO struct {
	ID            uint      `json:"id"`
	RestaurantID  uint      `json:"restaurant_id"`
	PlanName      string    `json:"plan_name"`
	Price         string    `json:"price"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty"`
}

// SubscriptionStatusDTO is the tenant-facing view: the currently usable row
// plus the full ledger history.
type SubscriptionStatusDTO struct {
	Current *SubscriptionDTO  `json:"current"`
	History []SubscriptionDTO `json:"history"`
}

func FromPlan(p *subscription.Plan) PlanDTO {
	return PlanDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		Price:        p.Price().StringFixed(2),
		DurationDays: p.DurationDays(),
		Features:     p.Features(),
		IsActive:     p.IsActive(),
		Badge: BadgeDTO{
			Text:    p.Badge().Text,
			Color:   string(p.Badge().Color),
			Enabled: p.Badge().Enabled,
		},
	}
}

func FromPlans(plans []*subscription.Plan) []PlanDTO {
	out := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromPlan(p))
	}
	return out
}

func FromSubscription(s *subscription.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:            s.ID(),
		RestaurantID:  s.RestaurantID(),
		PlanName:      s.PlanName(),
		Price:         s.Price().StringFixed(2),
		StartDate:     s.StartDate(),
		EndDate:       s.EndDate(),
		Status:        s.Status().String(),
		PaymentMethod: s.PaymentMethod(),
		TransactionID: s.TransactionID(),
	}
}

func FromSubscriptions(subs []*subscription.Subscription) []SubscriptionDTO {
	out := make([]SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubscription(s))
	}
	return out
}
