package confluence

import (
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

// registers the Confluence pass-through routes
func RegisterRoutes(router *gin.RouterGroup, client proxy.Forwarder) {
	proxy.Register(router, client, SpacesRoute(), SyncRoute())
}
