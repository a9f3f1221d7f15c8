package model

import "gorm.io/gorm"

// ListGift is a user's personal gift wish-list.
type ListGift struct {
	gorm.Model
	Name     string `gorm:"column:name;type:varchar(100);not null;comment:list name"`
	UserUuid string `gorm:"column:user_uuid;index;type:char(20);not null;comment:owner user id"`

	Gifts []Gift `gorm:"foreignKey:ListId"`
}

func (ListGift) TableName() string {
	return "list_gifts"
}

// Gift is one wished item on a list. Taken/TakenBy toggle together as a
// single field update when another participant claims it.
type Gift struct {
	gorm.Model
	Name     string `gorm:"column:name;type:varchar(100);not null;comment:gift name"`
	Quantity int    `gorm:"column:quantity;not null;default:1;comment:wished quantity"`
	Url      string `gorm:"column:url;type:varchar(500);comment:product link"`
	ListId   uint   `gorm:"column:list_id;index;not null;comment:owning list id"`
	UserUuid string `gorm:"column:user_uuid;type:char(20);not null;comment:list owner user id"`
	Taken    bool   `gorm:"column:taken;not null;default:false;comment:claimed flag"`
	TakenBy  string `gorm:"column:taken_by;type:char(20);comment:claiming user id, empty when unclaimed"`
}

func (Gift) TableName() string {
	return "gifts"
}

// ListEvent links a gift list into an event through the linking participant.
// A participant links at most one list per event.
type ListEvent struct {
	gorm.Model
	EventUuid     string `gorm:"column:event_uuid;type:char(20);not null;uniqueIndex:idx_participant_event,priority:2;comment:event id"`
	ListId        uint   `gorm:"column:list_id;not null;uniqueIndex:idx_participant_list,priority:2;comment:linked list id"`
	ParticipantId uint   `gorm:"column:participant_id;not null;uniqueIndex:idx_participant_event,priority:1;uniqueIndex:idx_participant_list,priority:1;comment:linking participant id"`
}

func (ListEvent) TableName() string {
	return "list_events"
}
