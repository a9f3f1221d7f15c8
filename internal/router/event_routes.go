package router

import (
	"gather_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterEventRoutes registers event, participant, and invitation routes.
func RegisterEventRoutes(rg *gin.RouterGroup) {
	eventGroup := rg.Group("/event")
	{
		eventGroup.GET("/info", handler.GetEventHandler)
		eventGroup.GET("/list", handler.GetMyEventsHandler)
		eventGroup.GET("/participants", handler.GetParticipantsHandler)
		eventGroup.GET("/invitations", handler.GetEventInvitationsHandler)

		eventGroup.POST("/create", handler.CreateEventHandler)
		eventGroup.POST("/update", handler.UpdateEventHandler)
		eventGroup.POST("/updateRole", handler.UpdateParticipantRoleHandler)
		eventGroup.POST("/invite", handler.BulkInviteHandler)
		eventGroup.POST("/respondInvitation", handler.RespondEventInvitationHandler)
	}
}
