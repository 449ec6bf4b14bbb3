package slack

import (
	"codeberg.org/solari/bff/internal/docstore"
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

// registers the Slack pass-through routes
func RegisterRoutes(router *gin.RouterGroup, client proxy.Forwarder, dir *docstore.Directory) {
	slackGroup := router.Group("/slack")
	{
		slackGroup.POST("/install", InstallHandler(client))
		slackGroup.POST("/channels", ChannelsHandler(client))
		slackGroup.POST("/disconnect", DisconnectHandler(client, dir))
	}
}
