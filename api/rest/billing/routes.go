package billing

import (
	"codeberg.org/solari/bff/internal/proxy"
	"github.com/gin-gonic/gin"
)

// registers the Stripe billing pass-through routes
func RegisterRoutes(router *gin.RouterGroup, client proxy.Forwarder) {
	proxy.Register(router, client, CheckoutRoute(), PortalRoute())
}
