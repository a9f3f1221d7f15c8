package request

// CreateGiftListRequest creates a personal gift wish-list.
type CreateGiftListRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AddGiftRequest adds a gift to one of the caller's lists.
type AddGiftRequest struct {
	ListId   uint   `json:"listId" binding:"required"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1"`
	Url      string `json:"url" binding:"omitempty,url,max=500"`
}

// DeleteGiftRequest removes a gift from one of the caller's lists.
type DeleteGiftRequest struct {
	GiftId uint `json:"giftId" binding:"required"`
}

// AddListEventRequest links one of the caller's lists into an event.
type AddListEventRequest struct {
	EventId string `json:"eventId" binding:"required"`
	ListId  uint   `json:"listId" binding:"required"`
}

// RemoveListEventRequest unlinks the caller's list from an event.
type RemoveListEventRequest struct {
	EventId string `json:"eventId" binding:"required"`
}

// CheckGiftRequest toggles a gift's taken mark inside an event.
type CheckGiftRequest struct {
	EventId string `json:"eventId" binding:"required"`
	GiftId  uint   `json:"giftId" binding:"required"`
	Taken   *bool  `json:"taken" binding:"required"`
}
