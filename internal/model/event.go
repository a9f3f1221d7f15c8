package model

import (
	"time"

	"gorm.io/gorm"
)

// Event is a planned gathering owned by its organizer.
type Event struct {
	gorm.Model

	// Uuid is the stable public identifier.
	// Format: E + 19 char timestamp-random string.
	Uuid        string    `gorm:"column:uuid;uniqueIndex;type:char(20);comment:public event id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null;comment:event name"`
	Description string    `gorm:"column:description;type:varchar(500);comment:event description"`
	Date        time.Time `gorm:"column:date;type:date;not null;comment:event date"`
	Time        string    `gorm:"column:time;type:char(5);comment:start time HH:MM"`
	Address     string    `gorm:"column:address;type:varchar(255);comment:venue address"`
	OrganizerId string    `gorm:"column:organizer_id;index;type:char(20);not null;comment:creator user id"`
}

func (Event) TableName() string {
	return "events"
}
