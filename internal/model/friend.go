package model

import "gorm.io/gorm"

// Friend is a confirmed symmetric relationship between two users.
// Rows are stored in canonical order (User1Uuid < User2Uuid) so a pair can
// never exist twice under swapped columns.
type Friend struct {
	gorm.Model
	User1Uuid string `gorm:"column:user1_uuid;type:char(20);not null;uniqueIndex:idx_friend_pair;comment:lower user id of the pair"`
	User2Uuid string `gorm:"column:user2_uuid;type:char(20);not null;uniqueIndex:idx_friend_pair;index;comment:higher user id of the pair"`
}

func (Friend) TableName() string {
	return "friends"
}

// OrderPair returns the two user ids in canonical (lexicographic) order.
// Every query and insert on the friends table goes through this so a pair
// can only ever be checked or stored one way.
func OrderPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
