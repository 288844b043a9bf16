// Package dto defines the transport representations of admin views.
package dto

import (
	authdto "github.com/menuqr-inc/menuqr/internal/application/auth/dto"
	subdto "github.com/menuqr-inc/menuqr/internal/application/subscription/dto"
)

type StatsDTO struct {
	TotalRestaurants    int64 `json:"total_restaurants"`
	TotalUsers          int64 `json:"total_users"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	ExpiredSubscription int64 `json:"expired_subscriptions"`
}

// RestaurantOverviewDTO is one row of the admin restaurant listing: the
// tenant plus its latest ledger row, if any.
type RestaurantOverviewDTO struct {
	Restaurant   authdto.RestaurantDTO   `json:"restaurant"`
	Subscription *subdto.SubscriptionDTO `json:"subscription,omitempty"`
}

type RestaurantListDTO struct {
	Restaurants []RestaurantOverviewDTO `json:"restaurants"`
	Total       int64                   `json:"total"`
	Page        int                     `json:"page"`
	PageSize    int                     `json:"page_size"`
}

type SubscriptionListDTO struct {
	Subscriptions []subdto.SubscriptionDTO `json:"subscriptions"`
	Total         int64                    `json:"total"`
	Page          int                      `json:"page"`
	PageSize      int                      `json:"page_size"`
}
