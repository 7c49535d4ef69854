// Package middleware provides fiber middleware shared by the entry points.
package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/wichananm65/food-order-backend/internal/logging"
	"github.com/wichananm65/food-order-backend/internal/session"
	"github.com/wichananm65/food-order-backend/internal/user"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per caller. Buckets idle longer than
// the TTL are dropped by Run.
type RateLimiter struct {
	limiters *session.Registry[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
	logger   *zap.Logger
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(requestsPerSecond float64, burst int, ttl time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters: session.New[string, *rate.Limiter](ttl),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		logger:   logging.OrNop(logger),
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	limiter, _ := rl.limiters.GetOrCreate(key, func() *rate.Limiter {
		return rate.NewLimiter(rl.rate, rl.burst)
	})
	return limiter
}

// Handler limits by authenticated user, falling back to the client IP.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := utils.CopyString(c.IP())
		if id, err := user.GetUserIDFromCtx(c); err == nil {
			key = "user:" + strconv.Itoa(id)
		}

		if !rl.getLimiter(key).Allow() {
			rl.logger.Warn("rate limit exceeded",
				zap.String("key", key),
				zap.String("path", utils.CopyString(c.Path())),
				zap.String("method", utils.CopyString(c.Method())))
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "too many requests"})
		}
		return c.Next()
	}
}

// Run drops idle buckets until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	rl.limiters.Run(ctx, interval)
}
