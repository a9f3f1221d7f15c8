package router

import (
	"gather_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterFriendRoutes registers the friendship graph routes.
func RegisterFriendRoutes(rg *gin.RouterGroup) {
	friendGroup := rg.Group("/friend")
	{
		friendGroup.GET("/list", handler.GetFriendListHandler)
		friendGroup.GET("/applyList", handler.GetFriendApplyListHandler)
		friendGroup.GET("/notificationCounts", handler.GetNotificationCountsHandler)

		friendGroup.POST("/apply", handler.ApplyFriendHandler)
		friendGroup.POST("/respond", handler.RespondFriendHandler)
		friendGroup.POST("/remove", handler.RemoveFriendHandler)
	}
}
