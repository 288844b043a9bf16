package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/subscription"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
	"github.com/menuqr-inc/menuqr/internal/shared/utils"
)

// SubscriptionMiddleware gates mutating tenant routes behind a usable
// subscription. A row is usable only when its status is active AND its end
// date is still ahead of the clock, so a stale active row that the sweeper
// has not caught yet never grants access.
type SubscriptionMiddleware struct {
	restaurantRepo   restaurant.RestaurantRepository
	subscriptionRepo subscription.SubscriptionRepository
	clock            biztime.Clock
	logger           logger.Interface
}

func NewSubscriptionMiddleware(restaurantRepo restaurant.RestaurantRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	clock biztime.Clock, log logger.Interface) *SubscriptionMiddleware {

	return &SubscriptionMiddleware{
		restaurantRepo:   restaurantRepo,
		subscriptionRepo: subscriptionRepo,
		clock:            clock,
		logger:           log,
	}
}

// RequireActiveSubscription must run after RequireAuth. On success it stores
// the restaurant and the covering subscription in the request context so
// handlers do not re-query them.
func (m *SubscriptionMiddleware) RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		rest, err := m.restaurantRepo.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Errorw("failed to load restaurant for gate", "user_id", userID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify subscription")
			c.Abort()
			return
		}
		if rest == nil {
			utils.ErrorResponse(c, http.StatusNotFound, "restaurant not found")
			c.Abort()
			return
		}

		current, err := m.subscriptionRepo.GetCurrentActive(c.Request.Context(), rest.ID(), m.clock.Now())
		if err != nil {
			m.logger.Errorw("failed to load subscription for gate",
				"restaurant_id", rest.ID(), "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify subscription")
			c.Abort()
			return
		}
		if current == nil {
			utils.SubscriptionRequiredResponse(c, "an active subscription is required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyRestaurant, rest)
		c.Set(constants.ContextKeySubscription, current)

		c.Next()
	}
}

// RestaurantFromContext reads the restaurant attached by the gate.
func RestaurantFromContext(c *gin.Context) (*restaurant.Restaurant, bool) {
	v, exists := c.Get(constants.ContextKeyRestaurant)
	if !exists {
		return nil, false
	}
	rest, ok := v.(*restaurant.Restaurant)
	return rest, ok
}
