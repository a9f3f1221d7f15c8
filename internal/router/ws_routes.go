package router

import (
	"gather_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes registers the chat socket upgrade route.
func RegisterWebSocketRoutes(rg *gin.RouterGroup) {
	wsGroup := rg.Group("/ws")
	{
		wsGroup.GET("/connect", handler.WsConnectHandler)
	}
}
