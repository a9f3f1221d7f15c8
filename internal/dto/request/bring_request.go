package request

// CreateBringItemRequest adds a supply item to an event.
type CreateBringItemRequest struct {
	EventId           string `json:"eventId" binding:"required"`
	Name              string `json:"name" binding:"required,min=1,max=100"`
	RequestedQuantity int    `json:"requestedQuantity" binding:"required,min=1"`
}

// TakeBringItemRequest pledges a quantity against an item.
// A repeated pledge overwrites the previous quantity.
type TakeBringItemRequest struct {
	BringItemId uint `json:"bringItemId" binding:"required"`
	Quantity    int  `json:"quantity" binding:"required,min=1"`
}

// ReleaseTakeRequest withdraws the caller's pledge.
type ReleaseTakeRequest struct {
	BringItemId uint `json:"bringItemId" binding:"required"`
}

// DeleteBringItemRequest removes an item and all its pledges.
type DeleteBringItemRequest struct {
	BringItemId uint `json:"bringItemId" binding:"required"`
}
