package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

// rateLimiterStore holds one limiter per caller key.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	perMin   int
}

func (s *rateLimiterStore) getLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)
		s.limiters[key] = limiter
	}
	return limiter
}

// RateLimit caps requests per authenticated user, falling back to the
// client IP. perMin <= 0 disables it.
func RateLimit(perMin int) gin.HandlerFunc {
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	store := &rateLimiterStore{limiters: make(map[string]*rate.Limiter), perMin: perMin}

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if id, ok := CurrentIdentity(c); ok {
			key = fmt.Sprintf("user:%d", id.UserID)
		}

		if !store.getLimiter(key).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("key", key))
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests. Try again later.")
			return
		}
		c.Next()
	}
}
