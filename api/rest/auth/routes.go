package auth

import (
	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/docstore"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, dir *docstore.Directory, sessions *auth.SessionStore) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/me", auth.AuthMiddleware(sessions), GetCurrentUserHandler(dir))
		authGroup.POST("/logout", LogoutHandler(sessions))
		authGroup.GET("/:provider", BeginAuthHandler())
		authGroup.GET("/:provider/callback", CallbackHandler(dir, sessions))
	}
}
