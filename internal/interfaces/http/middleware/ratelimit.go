package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/infrastructure/ratelimit"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/utils"
)

// RateLimit enforces a per-client-IP limit through the shared limiter.
// Requests are allowed through when the limiter backend is unavailable so a
// Redis outage does not take the API down with it.
func RateLimit(limiter ratelimit.RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP(), limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, errors.CodeRateLimited, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
