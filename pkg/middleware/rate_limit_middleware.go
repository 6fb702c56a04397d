package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// EvaluationRateLimit caps how often the evaluation endpoint may reach
// the generative engine. One process-wide token bucket; perMinute
// tokens are refilled per minute, burst allows short spikes.
func EvaluationRateLimit(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 30
	}
	if burst <= 0 {
		burst = 5
	}
	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many evaluation requests, try again shortly"})
			c.Abort()
			return
		}
		c.Next()
	}
}
