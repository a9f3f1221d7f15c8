package respond

// EventRespond is one event's public view.
type EventRespond struct {
	EventId     string `json:"eventId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Address     string `json:"address"`
	OrganizerId string `json:"organizerId"`
}

// ParticipantRespond is one event membership with its role.
type ParticipantRespond struct {
	UserId   string `json:"userId"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// EventInvitationRespond is one pending event invite from the invitee's view.
type EventInvitationRespond struct {
	EventId       string `json:"eventId"`
	EventName     string `json:"eventName"`
	OrganizerId   string `json:"organizerId"`
	OrganizerName string `json:"organizerName"`
}

// RespondEventInvitationRespond reports "accepted" or "declined".
type RespondEventInvitationRespond struct {
	Status string `json:"status"`
}

// NotificationCountsRespond carries the pending invitation counters shown as
// badges.
type NotificationCountsRespond struct {
	PendingFriendInvitations int64 `json:"pendingFriendInvitations"`
	PendingEventInvitations  int64 `json:"pendingEventInvitations"`
}
