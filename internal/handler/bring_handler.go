// Package handler provides the HTTP request handlers.
// This file handles supply items and quantity pledges.
package handler

import (
	"gather_server/internal/dto/request"
	"gather_server/internal/infrastructure/middleware"
	"gather_server/internal/service"
	"gather_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// CreateBringItemHandler adds a supply item to an event.
// POST /bring/create
func CreateBringItemHandler(c *gin.Context) {
	var req request.CreateBringItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Bring.Create(middleware.CallerID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetBringItemsHandler returns an event's items with nested pledges.
// GET /bring/list?eventId=xxx
func GetBringItemsHandler(c *gin.Context) {
	eventId := c.Query("eventId")
	if eventId == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := service.Svc.Bring.List(middleware.CallerID(c), eventId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// TakeBringItemHandler pledges a quantity against an item.
// POST /bring/take
func TakeBringItemHandler(c *gin.Context) {
	var req request.TakeBringItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Bring.Take(middleware.CallerID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ReleaseTakeHandler withdraws the caller's pledge.
// POST /bring/release
func ReleaseTakeHandler(c *gin.Context) {
	var req request.ReleaseTakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Bring.Release(middleware.CallerID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteBringItemHandler removes an item and all its pledges.
// POST /bring/delete
func DeleteBringItemHandler(c *gin.Context) {
	var req request.DeleteBringItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Bring.Delete(middleware.CallerID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
