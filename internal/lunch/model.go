package lunch

// SavedLunch is a user-curated list of lunch items, stored as a jsonb array.
type SavedLunch struct {
	ID     int      `json:"id"`
	UserID int      `json:"user_id"`
	Title  string   `json:"title"`
	Items  []string `json:"items"`
}

type Update struct {
	UserID *int      `json:"user_id"`
	Title  *string   `json:"title"`
	Items  *[]string `json:"items"`
}
