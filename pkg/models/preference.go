package models

import "time"

// Preference is a user's saved reading preferences. Categories is stored
// as a JSON array in a TEXT column.
type Preference struct {
	UserID     string    `json:"user_id"`
	Country    string    `json:"country"`
	Language   string    `json:"language"`
	Categories []string  `json:"categories"`
	UpdatedAt  time.Time `json:"updated_at"`
}
