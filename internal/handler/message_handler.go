// Package handler provides the HTTP request handlers.
// This file handles chat history reads.
package handler

import (
	"gather_server/internal/infrastructure/middleware"
	"gather_server/internal/service"
	"gather_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// GetMessageHistoryHandler returns an event's chat messages.
// GET /message/history?eventId=xxx
func GetMessageHistoryHandler(c *gin.Context) {
	eventId := c.Query("eventId")
	if eventId == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := service.Svc.Message.History(middleware.CallerID(c), eventId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
