package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/havenwellness/catalog-backend/utils"
	"golang.org/x/time/rate"
)

// RateLimit returns a per-client-IP token bucket. It guards the inquiry
// form, the only write path open to unauthenticated visitors.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(r, burst)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, utils.ErrorResponse("Too many requests, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
