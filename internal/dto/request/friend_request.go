package request

// ApplyFriendRequest sends (or reciprocally confirms) a friend request.
type ApplyFriendRequest struct {
	FriendId string `json:"friendId" binding:"required"`
}

// RespondFriendRequest answers a pending friend request by its id.
// Accept is a pointer so "false" survives binding.
type RespondFriendRequest struct {
	InvitationId uint  `json:"invitationId" binding:"required"`
	Accept       *bool `json:"accept" binding:"required"`
}
