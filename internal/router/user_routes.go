package router

import (
	"gather_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers profile reads and user lookup.
func RegisterUserRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/user")
	{
		userGroup.GET("/me", handler.GetMeHandler)
		userGroup.GET("/search", handler.SearchUserHandler)
	}
}
