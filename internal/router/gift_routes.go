package router

import (
	"gather_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterGiftRoutes registers the wish-list and list-sharing routes.
func RegisterGiftRoutes(rg *gin.RouterGroup) {
	giftGroup := rg.Group("/gift")
	{
		giftGroup.GET("/myLists", handler.GetMyGiftListsHandler)
		giftGroup.GET("/eventLists", handler.GetEventListsHandler)

		giftGroup.POST("/createList", handler.CreateGiftListHandler)
		giftGroup.POST("/deleteList", handler.DeleteGiftListHandler)
		giftGroup.POST("/add", handler.AddGiftHandler)
		giftGroup.POST("/delete", handler.DeleteGiftHandler)
		giftGroup.POST("/linkToEvent", handler.AddListEventHandler)
		giftGroup.POST("/unlinkFromEvent", handler.RemoveListEventHandler)
		giftGroup.POST("/check", handler.CheckGiftHandler)
	}
}
