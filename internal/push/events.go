package push

import "time"

type BookmarkEvent struct {
	Type   string    `json:"type"` // "bookmark.update" or "bookmark.delete"
	UserID string    `json:"user_id"`
	URL    string    `json:"url"`
	Title  string    `json:"title,omitempty"`
	At     time.Time `json:"at"`
}
