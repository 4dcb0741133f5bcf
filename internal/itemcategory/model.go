package itemcategory

// ItemCategory links an item to a category for a given user.
type ItemCategory struct {
	ID         int `json:"id"`
	ItemID     int `json:"item_id"`
	CategoryID int `json:"category_id"`
	UserID     int `json:"user_id"`
}

type Update struct {
	ItemID     *int `json:"item_id"`
	CategoryID *int `json:"category_id"`
	UserID     *int `json:"user_id"`
}
