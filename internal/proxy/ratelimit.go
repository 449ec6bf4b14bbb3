package proxy

import (
	"fmt"

	"codeberg.org/solari/bff/internal/errors"
	"codeberg.org/solari/bff/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-client-IP limiter for proxy groups; formatted is e.g. "120-M"
func RateLimit(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(errors.ProxyTooManyRequests),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// limiter store failure: let the request through
			logger.FromContext(c.Request.Context()).Warn("rate limiter failed", "error", err)
			c.Next()
		}),
		mgin.WithKeyGetter(func(c *gin.Context) string {
			return c.ClientIP()
		}),
	), nil
}
