package user

import "time"

// User is the stored account record. Password holds the bcrypt hash, never
// the plaintext; registration responses omit it, but direct record reads
// return the full row.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"password"`
	CreationDate time.Time `json:"creation_date"`
}

// Update carries the optional fields of a PATCH body; nil means "not
// provided", so only present fields are applied.
type Update struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}
