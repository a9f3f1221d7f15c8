package respond

// ApplyFriendRespond reports how a friend request landed: "sent" when a new
// pending request was created, "confirmed" when a reciprocal request
// collapsed into a friendship.
type ApplyFriendRespond struct {
	Status string `json:"status"`
}

// FriendRespond is one confirmed friend in a list.
type FriendRespond struct {
	UserId   string `json:"userId"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// FriendApplyRespond is one pending inbound friend request.
type FriendApplyRespond struct {
	InvitationId uint   `json:"invitationId"`
	SenderId     string `json:"senderId"`
	SenderName   string `json:"senderName"`
	CreatedAt    string `json:"createdAt"`
}
