package category

// Category is a tag items can be filed under.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Update struct {
	Name *string `json:"name"`
}
