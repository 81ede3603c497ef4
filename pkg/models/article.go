package models

// Article is the transport-level article shape returned by every news
// endpoint, regardless of whether the data came from the upstream provider
// or from the mock fallback tables.
type Article struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage,omitempty"`
	Author      string        `json:"author,omitempty"`
	PublishedAt string        `json:"publishedAt"`
	Source      ArticleSource `json:"source"`
}

type ArticleSource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Envelope is the uniform response for /news/top and /news/search.
// Status is "ok" on both the real and fallback paths; provenance lives in
// the Source tag.
type Envelope struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Source       string    `json:"source"`
}

// TopicArticles is one branch of a /news/trending response.
type TopicArticles struct {
	Topic        string    `json:"topic"`
	Articles     []Article `json:"articles"`
	TotalResults int       `json:"totalResults"`
}

// TrendingResponse is the /news/trending envelope.
type TrendingResponse struct {
	Status               string          `json:"status"`
	Trending             []string        `json:"trending"`
	TrendingWithArticles []TopicArticles `json:"trendingWithArticles"`
	Source               string          `json:"source"`
}
