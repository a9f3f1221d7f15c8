package model

import "gorm.io/gorm"

// FriendInvitation is a directional pending friend request.
// UserUuid sent the request, RequestUuid is expected to answer it. A
// reciprocal row (columns swapped) collapses both into a Friend record.
type FriendInvitation struct {
	gorm.Model
	UserUuid    string `gorm:"column:user_uuid;type:char(20);not null;uniqueIndex:idx_sender_target;comment:sender user id"`
	RequestUuid string `gorm:"column:request_uuid;type:char(20);not null;uniqueIndex:idx_sender_target;index;comment:target user id"`
}

func (FriendInvitation) TableName() string {
	return "friend_invitations"
}
