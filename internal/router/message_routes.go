package router

import (
	"gather_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterMessageRoutes registers the chat history routes.
func RegisterMessageRoutes(rg *gin.RouterGroup) {
	messageGroup := rg.Group("/message")
	{
		messageGroup.GET("/history", handler.GetMessageHistoryHandler)
	}
}
