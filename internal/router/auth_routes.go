package router

import (
	"gather_server/internal/handler"
	"gather_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the account and token routes. Register,
// login and refresh are the only unauthenticated endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", handler.RegisterHandler)
		authGroup.POST("/login", handler.LoginHandler)
		authGroup.POST("/refresh", handler.RefreshTokenHandler)
		authGroup.POST("/logout", middleware.JWTAuth(), handler.LogoutHandler)
	}
}
