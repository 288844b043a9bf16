package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/ratelimit"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
	"github.com/menuqr-inc/menuqr/internal/shared/utils"
)

// RateLimit throttles by client IP and route. The limiter failing open is
// deliberate: losing redis should not take authentication down with it.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig,
	log logger.Interface) gin.HandlerFunc {

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.FullPath(), c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
