package agents

import (
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

// registers agent management, chat and workflow routes
func RegisterRoutes(router *gin.RouterGroup, client proxy.Forwarder) {
	proxy.Register(router, client,
		ListRoute(),
		CreateRoute(),
		UpdateRoute(),
		DeleteRoute(),
		ChatRoute(),
		RateRoute(),
		RunWorkflowRoute(),
	)
}
