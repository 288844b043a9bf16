package subscription

import (
	"context"
	"time"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error

	// GetCurrentActive returns the most recent row with status active and
	// end date after now, or nil when the restaurant has no usable row.
	GetCurrentActive(ctx context.Context, restaurantID uint, now time.Time) (*Subscription, error)

	// GetLatestByRestaurantID returns the most recent row regardless of
	// status, or nil when the restaurant has no rows.
	GetLatestByRestaurantID(ctx context.Context, restaurantID uint) (*Subscription, error)

	ListByRestaurantID(ctx context.Context, restaurantID uint) ([]*Subscription, error)
	List(ctx context.Context, filter SubscriptionFilter) ([]*Subscription, int64, error)

	// ExpireActiveByRestaurantID bulk-marks the restaurant's active rows
	// expired. Runs inside the purchase transaction.
	ExpireActiveByRestaurantID(ctx context.Context, restaurantID uint) error

	// ExpireAllPast bulk-marks rows expired where status is active and the
	// end date has passed. Pending rows are never touched. Returns the
	// number of rows updated.
	ExpireAllPast(ctx context.Context, now time.Time) (int64, error)

	CountByStatus(ctx context.Context, status string) (int64, error)
	CountActiveAt(ctx context.Context, now time.Time) (int64, error)
}

type SubscriptionFilter struct {
	RestaurantID *uint
	Status       *string
	Page         int
	PageSize     int
}

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error

	// GetAllActive returns active plans ordered by price ascending.
	GetAllActive(ctx context.Context) ([]*Plan, error)
	List(ctx context.Context) ([]*Plan, error)

	Count(ctx context.Context) (int64, error)
}
