package model

import "gorm.io/gorm"

// EventInvitation is a pending invite for a user to join an event.
// Deleted on accept or decline; accept additionally materializes a
// Participant row. The unique index is the authoritative guard against
// concurrent duplicate invites.
type EventInvitation struct {
	gorm.Model
	EventUuid   string `gorm:"column:event_uuid;type:char(20);not null;uniqueIndex:idx_event_invitee;comment:event id"`
	UserUuid    string `gorm:"column:user_uuid;type:char(20);not null;uniqueIndex:idx_event_invitee;index;comment:invited user id"`
	OrganizerId string `gorm:"column:organizer_id;type:char(20);not null;comment:inviting user id"`
}

func (EventInvitation) TableName() string {
	return "event_invitations"
}
