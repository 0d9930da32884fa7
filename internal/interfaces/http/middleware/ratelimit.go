package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/back-informatica/chamados/internal/infrastructure/ratelimit"
	"github.com/back-informatica/chamados/internal/shared/constants"
	"github.com/back-informatica/chamados/internal/shared/errors"
	"github.com/back-informatica/chamados/internal/shared/logger"
	"github.com/back-informatica/chamados/internal/shared/utils"
)

// RateLimiter limits requests per client IP and scope. A nil limiter or a
// failing counter store lets every request through.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{limiter: limiter, logger: logger}
}

// Limit returns a Gin middleware that enforces the rate limit for scope.
func (rl *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		res, err := rl.limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !res.Allowed {
			if secs := int(res.ResetAfter.Seconds()); secs > 0 {
				c.Header(constants.HeaderRetryAfter, strconv.Itoa(secs))
			}
			utils.AbortWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			return
		}

		c.Next()
	}
}
