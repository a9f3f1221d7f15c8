package respond

// ChatMessageRespond is one outbound frame on the event chat socket and one
// row in the message history.
type ChatMessageRespond struct {
	EventId    string `json:"eventId"`
	SenderId   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
}
