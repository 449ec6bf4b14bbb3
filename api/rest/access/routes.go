package access

import (
	"codeberg.org/solari/bff/internal/accessgate"
	"codeberg.org/solari/bff/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers GET /access on the api group
func RegisterRoutes(router *gin.RouterGroup, ev *accessgate.Evaluator, sessions *auth.SessionStore) {
	router.GET("/access", auth.OptionalAuthMiddleware(sessions), GetAccessHandler(ev))
}

// registers the gated page routes at /app/*page on the engine
func RegisterPages(router gin.IRouter, ev *accessgate.Evaluator, sessions *auth.SessionStore) {
	router.GET(AppPrefix+"/*page",
		auth.OptionalAuthMiddleware(sessions),
		accessgate.Middleware(ev, identityFromContext, AppPrefix),
		PageHandler(),
	)
}
