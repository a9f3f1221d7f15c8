// Package router registers the HTTP routes.
// This file is the entry point aggregating the per-module registrations.
package router

import (
	"gather_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every route onto the engine. The /auth group is
// public; everything else sits behind JWT authentication.
func RegisterRoutes(r *gin.Engine) {
	RegisterAuthRoutes(r)

	authed := r.Group("/", middleware.JWTAuth())
	RegisterUserRoutes(authed)
	RegisterFriendRoutes(authed)
	RegisterEventRoutes(authed)
	RegisterBringRoutes(authed)
	RegisterGiftRoutes(authed)
	RegisterMessageRoutes(authed)
	RegisterWebSocketRoutes(authed)
}
