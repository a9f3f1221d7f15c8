// Package handler provides the HTTP request handlers.
// This file handles events, participants, and the event invitation flow.
package handler

import (
	"gather_server/internal/dto/request"
	"gather_server/internal/infrastructure/middleware"
	"gather_server/internal/service"
	"gather_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// CreateEventHandler creates an event owned by the caller.
// POST /event/create
func CreateEventHandler(c *gin.Context) {
	var req request.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Event.Create(middleware.CallerID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateEventHandler edits an event.
// POST /event/update
func UpdateEventHandler(c *gin.Context) {
	var req request.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Event.Update(middleware.CallerID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetEventHandler returns one event.
// GET /event/info?eventId=xxx
func GetEventHandler(c *gin.Context) {
	eventId := c.Query("eventId")
	if eventId == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := service.Svc.Event.Get(middleware.CallerID(c), eventId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyEventsHandler returns every event the caller participates in.
// GET /event/list
func GetMyEventsHandler(c *gin.Context) {
	data, err := service.Svc.Event.ListMine(middleware.CallerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetParticipantsHandler returns an event's members with role names.
// GET /event/participants?eventId=xxx
func GetParticipantsHandler(c *gin.Context) {
	eventId := c.Query("eventId")
	if eventId == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := service.Svc.Participant.List(eventId, middleware.CallerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateParticipantRoleHandler changes another participant's role.
// POST /event/updateRole
func UpdateParticipantRoleHandler(c *gin.Context) {
	var req request.UpdateParticipantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Participant.UpdateRole(middleware.CallerID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// BulkInviteHandler invites a batch of friends into an event.
// POST /event/invite
func BulkInviteHandler(c *gin.Context) {
	var req request.BulkInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Event.BulkInvite(middleware.CallerID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetEventInvitationsHandler returns the caller's pending event invites.
// GET /event/invitations
func GetEventInvitationsHandler(c *gin.Context) {
	data, err := service.Svc.Event.ListInvitations(middleware.CallerID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RespondEventInvitationHandler accepts or declines a pending invite.
// POST /event/respondInvitation
func RespondEventInvitationHandler(c *gin.Context) {
	var req request.RespondEventInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Event.RespondInvitation(middleware.CallerID(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
