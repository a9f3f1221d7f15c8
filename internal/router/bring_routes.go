package router

import (
	"gather_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterBringRoutes registers the supply item and pledge routes.
func RegisterBringRoutes(rg *gin.RouterGroup) {
	bringGroup := rg.Group("/bring")
	{
		bringGroup.GET("/list", handler.GetBringItemsHandler)

		bringGroup.POST("/create", handler.CreateBringItemHandler)
		bringGroup.POST("/take", handler.TakeBringItemHandler)
		bringGroup.POST("/release", handler.ReleaseTakeHandler)
		bringGroup.POST("/delete", handler.DeleteBringItemHandler)
	}
}
