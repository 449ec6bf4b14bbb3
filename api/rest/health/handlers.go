package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// reports whether a dependency is reachable
type Checker func(ctx context.Context) error

// Handler godoc
// @Summary Health check
// @Description Reports service health and document store reachability
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get]
func Handler(docstore Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := Response{
			Status:   statusHealthy,
			Service:  "solari-bff",
			Version:  "1.0.0",
			Docstore: "ok",
		}

		if docstore != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := docstore(ctx); err != nil {
				resp.Status = statusDegraded
				resp.Docstore = "unreachable"
				c.JSON(http.StatusServiceUnavailable, resp)
				return
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// PingHandler godoc
// @Summary Ping
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /api/v1/ping [get]
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
