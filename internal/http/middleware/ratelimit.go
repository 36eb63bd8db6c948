package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type window struct {
	start time.Time
	count int
}

// SimpleRateLimit is a fixed-window per-IP limiter held in process memory.
// It is the fallback when no Redis address is configured; counts are not
// shared between instances.
func SimpleRateLimit(maxRequests int, windowSize time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*window)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		w, ok := clients[ip]
		if !ok || now.Sub(w.start) > windowSize {
			w = &window{start: now}
			clients[ip] = w
		}
		w.count++
		blocked := w.count > maxRequests
		mu.Unlock()

		if blocked {
			rlBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
