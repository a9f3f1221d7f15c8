// Package handler provides the HTTP request handlers.
// This file handles gift wish-lists and their sharing into events.
package handler

import (
	"strconv"

	"gather_server/internal/dto/request"
	"gather_server/internal/infrastructure/middleware"
	"gather_server/internal/service"
	"gather_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// CreateGiftListHandler creates a wish-list owned by the caller.
// POST /gift/createList
func CreateGiftListHandler(c *gin.Context) {
	var req request.CreateGiftListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Gift.CreateList(middleware.CallerID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyGiftListsHandler returns the caller's own wish-lists.
// GET /gift/myLists
func GetMyGiftListsHandler(c *gin.Context) {
	data, err := service.Svc.Gift.ListMine(middleware.CallerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteGiftListHandler removes one of the caller's lists.
// POST /gift/deleteList?listId=xxx
func DeleteGiftListHandler(c *gin.Context) {
	listId, err := strconv.ParseUint(c.Query("listId"), 10, 32)
	if err != nil || listId == 0 {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	if err := service.Svc.Gift.DeleteList(middleware.CallerID(c), uint(listId)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// AddGiftHandler adds a gift to one of the caller's lists.
// POST /gift/add
func AddGiftHandler(c *gin.Context) {
	var req request.AddGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Gift.AddGift(middleware.CallerID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteGiftHandler removes a gift from one of the caller's lists.
// POST /gift/delete
func DeleteGiftHandler(c *gin.Context) {
	var req request.DeleteGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Gift.DeleteGift(middleware.CallerID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// AddListEventHandler links one of the caller's lists into an event.
// POST /gift/linkToEvent
func AddListEventHandler(c *gin.Context) {
	var req request.AddListEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Gift.AddListEvent(middleware.CallerID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RemoveListEventHandler unlinks the caller's list from an event.
// POST /gift/unlinkFromEvent
func RemoveListEventHandler(c *gin.Context) {
	var req request.RemoveListEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Gift.RemoveListEvent(middleware.CallerID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetEventListsHandler returns every gift list shared into an event.
// GET /gift/eventLists?eventId=xxx
func GetEventListsHandler(c *gin.Context) {
	eventId := c.Query("eventId")
	if eventId == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := service.Svc.Gift.EventLists(middleware.CallerID(c), eventId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CheckGiftHandler toggles a gift's taken mark inside an event.
// POST /gift/check
func CheckGiftHandler(c *gin.Context) {
	var req request.CheckGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Gift.CheckGift(middleware.CallerID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
