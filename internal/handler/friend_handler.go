// Package handler provides the HTTP request handlers.
// This file handles the friendship graph: requests, responses, and lists.
package handler

import (
	"gather_server/internal/dto/request"
	"gather_server/internal/infrastructure/middleware"
	"gather_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplyFriendHandler sends or reciprocally confirms a friend request.
// POST /friend/apply
func ApplyFriendHandler(c *gin.Context) {
	var req request.ApplyFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Friend.Apply(middleware.CallerID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RespondFriendHandler accepts or declines a pending friend request.
// POST /friend/respond
func RespondFriendHandler(c *gin.Context) {
	var req request.RespondFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Friend.Respond(middleware.CallerID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RemoveFriendHandler dissolves a confirmed friendship.
// POST /friend/remove
func RemoveFriendHandler(c *gin.Context) {
	var req request.ApplyFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Friend.Remove(middleware.CallerID(c), req.FriendId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetFriendListHandler returns the caller's confirmed friends.
// GET /friend/list
func GetFriendListHandler(c *gin.Context) {
	data, err := service.Svc.Friend.List(middleware.CallerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFriendApplyListHandler returns pending inbound friend requests.
// GET /friend/applyList
func GetFriendApplyListHandler(c *gin.Context) {
	data, err := service.Svc.Friend.ListApplies(middleware.CallerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetNotificationCountsHandler returns the pending invitation counters.
// GET /friend/notificationCounts
func GetNotificationCountsHandler(c *gin.Context) {
	data, err := service.Svc.Event.NotificationCounts(middleware.CallerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
