package teams

import (
	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/docstore"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, dir *docstore.Directory, sessions *auth.SessionStore) {
	teamsGroup := router.Group("/teams")
	teamsGroup.Use(auth.AuthMiddleware(sessions))
	{
		teamsGroup.GET("/current", GetCurrentTeamHandler(dir))
		teamsGroup.GET("/current/slack-installations", ListSlackInstallationsHandler(dir))
	}
}
