package model

import "gorm.io/gorm"

// Participant is a user's membership record in one event, carrying a role.
// This is the authorization anchor: every event-scoped action first resolves
// the caller's row here.
type Participant struct {
	gorm.Model
	EventUuid string `gorm:"column:event_uuid;type:char(20);not null;uniqueIndex:idx_event_user;comment:event id"`
	UserUuid  string `gorm:"column:user_uuid;type:char(20);not null;uniqueIndex:idx_event_user;index;comment:user id"`
	RoleId    uint   `gorm:"column:role_id;not null;comment:role_event id"`

	Role RoleEvent `gorm:"foreignKey:RoleId"`
}

func (Participant) TableName() string {
	return "participants"
}
