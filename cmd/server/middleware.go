package main

import (
	"net/http"
	"time"

	"codeberg.org/solari/bff/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// attaches a request id and a request-scoped logger, then logs the outcome
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Header(headerRequestID, requestID)

		l := logger.With("request_id", requestID)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), l))

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}

		if status >= http.StatusInternalServerError {
			l.Warn("request failed", args...)
			return
		}

		l.Debug("request handled", args...)
	}
}

// allows the dashboard origins to call the API with credentials
func CORSMiddleware(allowedOrigins []string, production bool) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", headerRequestID},
		ExposeHeaders:    []string{headerRequestID, "X-Solari-Banner"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	switch {
	case len(allowedOrigins) > 0:
		cfg.AllowOrigins = allowedOrigins
	case production:
		// no configured origins in production means same-origin only
		cfg.AllowOriginFunc = func(string) bool { return false }
	default:
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return cors.New(cfg)
}
