package request

// ChatMessageRequest is one inbound frame on the event chat socket.
type ChatMessageRequest struct {
	EventId string `json:"eventId" binding:"required"`
	Content string `json:"content" binding:"required,max=1000"`
}
