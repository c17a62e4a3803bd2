package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// RateLimit throttles each client IP to 10 requests per second with a burst
// of 20. Idle limiters are evicted after an hour.
func RateLimit() gin.HandlerFunc {
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(100*time.Millisecond), 20), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTooManyRequests)
	})
}
