package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/massview/pkg/static"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests once the limiter runs dry. A nil limiter
// disables limiting.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": static.RESPONSE_RATE_LIMITED})
			return
		}

		c.Next()
	}
}
