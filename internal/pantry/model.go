package pantry

// PantryItem is one row of a user's pantry. Only the first category slot is
// required; the rest stay null until filled.
type PantryItem struct {
	ID        int     `json:"id"`
	UserID    int     `json:"user_id"`
	ItemName  string  `json:"item_name"`
	Category1 string  `json:"category_1"`
	Category2 *string `json:"category_2"`
	Category3 *string `json:"category_3"`
	Category4 *string `json:"category_4"`
	Category5 *string `json:"category_5"`
	Category6 *string `json:"category_6"`
	Category7 *string `json:"category_7"`
	Quantity  int     `json:"quantity"`
}

type Update struct {
	UserID    *int    `json:"user_id"`
	ItemName  *string `json:"item_name"`
	Category1 *string `json:"category_1"`
	Category2 *string `json:"category_2"`
	Category3 *string `json:"category_3"`
	Category4 *string `json:"category_4"`
	Category5 *string `json:"category_5"`
	Category6 *string `json:"category_6"`
	Category7 *string `json:"category_7"`
	Quantity  *int    `json:"quantity"`
}

// provided returns the number of fields present in the patch body.
func (u *Update) provided() int {
	n := 0
	if u.UserID != nil {
		n++
	}
	if u.ItemName != nil {
		n++
	}
	for _, c := range []*string{u.Category1, u.Category2, u.Category3, u.Category4, u.Category5, u.Category6, u.Category7} {
		if c != nil {
			n++
		}
	}
	if u.Quantity != nil {
		n++
	}
	return n
}
