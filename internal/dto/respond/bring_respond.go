package respond

// TakeRespond is one user's pledge on a bring item.
type TakeRespond struct {
	UserId   string `json:"userId"`
	Quantity int    `json:"quantity"`
}

// BringItemRespond is one supply item with its nested pledges, ordered by
// creation time.
type BringItemRespond struct {
	BringItemId       uint          `json:"bringItemId"`
	Name              string        `json:"name"`
	RequestedQuantity int           `json:"requestedQuantity"`
	IsTaken           bool          `json:"isTaken"`
	TakenAt           string        `json:"takenAt,omitempty"`
	CreatedBy         string        `json:"createdBy"`
	Takes             []TakeRespond `json:"takes"`
}
