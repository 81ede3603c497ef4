package models

import "time"

type Bookmark struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URLToImage  string    `json:"urlToImage,omitempty"`
	SourceName  string    `json:"source_name,omitempty"`
	PublishedAt string    `json:"publishedAt,omitempty"`
	SavedAt     time.Time `json:"saved_at"`
}
