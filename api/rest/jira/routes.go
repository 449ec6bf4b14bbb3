package jira

import (
	"codeberg.org/solari/bff/internal/docstore"
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

// registers the Jira pass-through routes
func RegisterRoutes(router *gin.RouterGroup, client proxy.Forwarder, dir *docstore.Directory) {
	jiraGroup := router.Group("/jira")
	{
		jiraGroup.POST("/connect", ConnectHandler(client))
		jiraGroup.POST("/projects", ProjectsHandler(client))
		jiraGroup.POST("/disconnect", DisconnectHandler(client, dir))
	}
}
