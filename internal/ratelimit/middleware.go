package ratelimit

import (
	"fmt"
	"math"

	"crm-server/internal/apierrors"
	authHandler "crm-server/internal/auth/handler"
	"crm-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits authenticated callers per scope. It must run after the JWT middleware.
// Counter failures let the request through.
func (s *Service) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Enabled() {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		userID, _, err := authHandler.Caller(c)
		if err != nil {
			c.Next()
			return
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "rate_limit_scope", Value: scope},
			observability.Field{Key: "rate_limit", Value: s.limit},
		)

		result, err := s.CheckRateLimit(ctx, scope, userID)
		if err != nil {
			s.logger.InfoWithError(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(math.Ceil(result.RetryAfter.Seconds()))))
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Too many requests, please slow down"))
			c.Abort()
			return
		}

		c.Next()
	}
}
