package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"newshub/pkg/models"
	"newshub/pkg/utils"
)

// Articles are always requested in English regardless of country.
const defaultLanguage = "en"

// ErrNoArticles marks a structurally valid upstream response that carried
// zero articles. Callers treat it like any other fetch failure.
var ErrNoArticles = errors.New("upstream returned no articles")

// Pool holds the known GNews credentials. Each call takes exactly one key;
// Next rotates through the pool round-robin so multiple keys share load,
// but there is no retry-with-another-key on failure.
type Pool struct {
	keys []string
	next atomic.Uint64
}

func NewPool(keys []string) *Pool {
	return &Pool{keys: keys}
}

func (p *Pool) Next() (string, bool) {
	if len(p.keys) == 0 {
		return "", false
	}
	n := p.next.Add(1) - 1
	return p.keys[int(n%uint64(len(p.keys)))], true
}

// Client fetches from the GNews API and maps its payload into the
// transport Article shape.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Keys    *Pool
}

func NewClient(cfg utils.NewsConfig) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 12 * time.Second},
		BaseURL: cfg.BaseURL,
		Keys:    NewPool(cfg.APIKeys),
	}
}

type gnewsResponse struct {
	TotalArticles int `json:"totalArticles"`
	Articles      []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"source"`
	} `json:"articles"`
}

// TopHeadlines fetches category headlines. The int result is the
// upstream-reported total.
func (c *Client) TopHeadlines(ctx context.Context, q Query) ([]models.Article, int, error) {
	u, err := url.Parse(c.BaseURL + "/top-headlines")
	if err != nil {
		return nil, 0, fmt.Errorf("gnews: parse base url: %w", err)
	}

	vals := u.Query()
	vals.Set("country", q.Country)
	vals.Set("category", q.Category)
	vals.Set("lang", defaultLanguage)
	vals.Set("max", strconv.Itoa(q.PageSize))
	vals.Set("page", strconv.Itoa(q.Page))
	u.RawQuery = vals.Encode()

	return c.fetch(ctx, u)
}

// Search fetches articles matching a query string.
func (c *Client) Search(ctx context.Context, q Query) ([]models.Article, int, error) {
	u, err := url.Parse(c.BaseURL + "/search")
	if err != nil {
		return nil, 0, fmt.Errorf("gnews: parse base url: %w", err)
	}

	vals := u.Query()
	vals.Set("q", q.Q)
	vals.Set("lang", defaultLanguage)
	vals.Set("sortby", q.SortBy)
	vals.Set("max", strconv.Itoa(q.PageSize))
	vals.Set("page", strconv.Itoa(q.Page))
	if q.Country != "" {
		vals.Set("country", q.Country)
	}
	u.RawQuery = vals.Encode()

	return c.fetch(ctx, u)
}

func (c *Client) fetch(ctx context.Context, u *url.URL) ([]models.Article, int, error) {
	key, ok := c.Keys.Next()
	if !ok {
		return nil, 0, errors.New("gnews: no api key configured")
	}
	vals := u.Query()
	vals.Set("apikey", key)
	u.RawQuery = vals.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("gnews: build request: %w", err)
	}
	req.Header.Set("User-Agent", "newshub/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("gnews: request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("gnews: status %d: %s", resp.StatusCode, string(body))
	}

	var gr gnewsResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, 0, fmt.Errorf("gnews: decode: %w", err)
	}

	if len(gr.Articles) == 0 {
		return nil, 0, ErrNoArticles
	}

	articles := make([]models.Article, 0, len(gr.Articles))
	for _, a := range gr.Articles {
		articles = append(articles, models.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  a.Image,
			PublishedAt: a.PublishedAt,
			Source: models.ArticleSource{
				Name: a.Source.Name,
				URL:  a.Source.URL,
			},
		})
	}

	return articles, gr.TotalArticles, nil
}
