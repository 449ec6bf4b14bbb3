package websocket

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, deps StreamDeps) {
	router.GET("/access/stream", AccessStreamHandler(deps))
}
