package respond

// GiftRespond is one gift in a list view.
type GiftRespond struct {
	GiftId   uint   `json:"giftId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Url      string `json:"url,omitempty"`
	Taken    bool   `json:"taken"`
	TakenBy  string `json:"takenBy,omitempty"`
}

// GiftListRespond is one wish-list with its gifts.
type GiftListRespond struct {
	ListId uint          `json:"listId"`
	Name   string        `json:"name"`
	Owner  string        `json:"owner"`
	Gifts  []GiftRespond `json:"gifts"`
}

// ListEventRespond is one list linked into an event.
type ListEventRespond struct {
	ListEventId uint          `json:"listEventId"`
	List        GiftListRespond `json:"list"`
}
