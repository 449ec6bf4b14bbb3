package ratings

import (
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, client proxy.Forwarder) {
	ratingsGroup := router.Group("/ratings")
	{
		ratingsGroup.POST("/analytics", AnalyticsHandler())
		ratingsGroup.POST("/agent-analytics", AgentAnalyticsHandler(client))
	}
}
