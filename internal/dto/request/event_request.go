package request

// CreateEventRequest creates an event owned by the caller.
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	Date        string `json:"date" binding:"required"` // format 2006-01-02
	Time        string `json:"time" binding:"max=5"`    // format 15:04
	Address     string `json:"address" binding:"max=255"`
}

// UpdateEventRequest edits an existing event.
type UpdateEventRequest struct {
	EventId     string `json:"eventId" binding:"required"`
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"max=5"`
	Address     string `json:"address" binding:"max=255"`
}

// BulkInviteRequest invites a batch of friends into an event.
type BulkInviteRequest struct {
	EventId string   `json:"eventId" binding:"required"`
	UserIds []string `json:"userIds" binding:"required,min=1,dive,required"`
}

// RespondEventInvitationRequest accepts or declines a pending event invite.
type RespondEventInvitationRequest struct {
	EventId string `json:"eventId" binding:"required"`
	Accept  *bool  `json:"accept" binding:"required"`
}

// UpdateParticipantRoleRequest changes another participant's role.
type UpdateParticipantRoleRequest struct {
	EventId string `json:"eventId" binding:"required"`
	UserId  string `json:"userId" binding:"required"`
	RoleId  uint   `json:"roleId" binding:"required"`
}
