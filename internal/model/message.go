package model

import "gorm.io/gorm"

// Message is a persisted event chat message.
type Message struct {
	gorm.Model
	EventUuid  string `gorm:"column:event_uuid;index;type:char(20);not null;comment:event id"`
	SenderUuid string `gorm:"column:sender_uuid;type:char(20);not null;comment:sender user id"`
	Content    string `gorm:"column:content;type:varchar(1000);not null;comment:message body"`
}

func (Message) TableName() string {
	return "messages"
}
