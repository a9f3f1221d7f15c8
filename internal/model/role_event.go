package model

// RoleEvent is the event role lookup table.
// Seeded once with superAdmin/admin/gift/participant, immutable afterwards.
type RoleEvent struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name;uniqueIndex;type:varchar(32);not null;comment:role name"`
}

func (RoleEvent) TableName() string {
	return "role_event"
}
