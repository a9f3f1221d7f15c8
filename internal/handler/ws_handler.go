// Package handler provides the HTTP request handlers.
// This file upgrades authenticated requests to event chat connections.
package handler

import (
	"gather_server/internal/infrastructure/middleware"
	"gather_server/internal/service/chat"
	"gather_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// Broker is the chat message broker, injected from main before the router
// starts serving.
var Broker chat.MessageBroker

// WsConnectHandler upgrades the request to a chat WebSocket. The identity
// comes from the access token, never from the query string.
// GET /ws/connect
func WsConnectHandler(c *gin.Context) {
	if Broker == nil {
		HandleError(c, errorx.ErrServerBusy)
		return
	}
	chat.ServeWs(c, Broker, middleware.CallerID(c))
}
