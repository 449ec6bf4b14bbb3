package booking

import (
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

// registers the onboarding call booking routes
func RegisterRoutes(router *gin.RouterGroup, client proxy.Forwarder) {
	proxy.Register(router, client, AvailabilityRoute(), ConfirmRoute())
}
