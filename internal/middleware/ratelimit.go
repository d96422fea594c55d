package middleware

import (
	"fmt"
	"net/http"
	"time"

	"maestro/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit caps requests per path within a fixed window using Redis
// INCR+TTL. The first increment in a window sets the TTL; Redis errors
// fail open.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rl:%s", c.FullPath())
		cnt, err := rdb.Incr(c.Request.Context(), key).Result()
		if err == nil && cnt == 1 {
			_ = rdb.Expire(c.Request.Context(), key, window).Err()
		}
		if err == nil && cnt > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.Fail("too many requests"))
			return
		}
		c.Next()
	}
}
