package item

// Item is a catalog entry in the shared food item list.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"item_name"`
}

type Update struct {
	Name *string `json:"item_name"`
}
