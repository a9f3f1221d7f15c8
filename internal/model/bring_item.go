package model

import (
	"database/sql"

	"gorm.io/gorm"
)

// BringItem is a requested supply item for an event.
// IsTaken is a derived cache: true iff the sum of pledge quantities covers
// RequestedQuantity. Every mutation of Taken rows reconciles it inside the
// same transaction.
type BringItem struct {
	gorm.Model
	EventUuid         string       `gorm:"column:event_uuid;index;type:char(20);not null;comment:event id"`
	Name              string       `gorm:"column:name;type:varchar(100);not null;comment:item name"`
	RequestedQuantity int          `gorm:"column:requested_quantity;not null;comment:quantity needed"`
	IsTaken           bool         `gorm:"column:is_taken;not null;default:false;comment:fully covered flag"`
	TakenAt           sql.NullTime `gorm:"column:taken_at;type:timestamp;comment:when fully covered"`
	CreatedByUuid     string       `gorm:"column:created_by_uuid;type:char(20);not null;comment:creator user id"`

	Takes []Taken `gorm:"foreignKey:BringItemId"`
}

func (BringItem) TableName() string {
	return "bring_items"
}

// Taken is one user's quantity pledge against a bring item.
// One row per user per item; a repeated pledge overwrites the quantity.
type Taken struct {
	gorm.Model
	BringItemId uint   `gorm:"column:bring_item_id;not null;uniqueIndex:idx_item_user;comment:bring item id"`
	UserUuid    string `gorm:"column:user_uuid;type:char(20);not null;uniqueIndex:idx_item_user;comment:pledging user id"`
	Quantity    int    `gorm:"column:quantity;not null;comment:pledged quantity"`
}

func (Taken) TableName() string {
	return "taken"
}
