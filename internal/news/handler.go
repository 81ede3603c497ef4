package news

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"newshub/pkg/models"
)

// Fetcher is the upstream provider seam. *Client is the production
// implementation; tests substitute fakes.
type Fetcher interface {
	TopHeadlines(ctx context.Context, q Query) ([]models.Article, int, error)
	Search(ctx context.Context, q Query) ([]models.Article, int, error)
}

// trendingTopics is the rotation the client's trending rail cycles
// through. Order matters: the first fanOutTopics entries get live article
// searches, the rest are returned as bare topic strings.
var trendingTopics = []string{
	"India", "Technology", "Cricket", "Elections", "Economy",
	"Bollywood", "Climate", "Startups", "Space", "Health",
}

// fanOutTopics bounds how many concurrent upstream searches one trending
// request may issue.
const fanOutTopics = 3

// perTopicArticles is how many articles each trending branch asks for.
const perTopicArticles = 3

type Handler struct {
	Fetcher Fetcher
}

func NewHandler(f Fetcher) *Handler {
	return &Handler{Fetcher: f}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.redirectTop)
	rg.GET("/top", h.top)
	rg.GET("/search", h.search)
	rg.GET("/trending", h.trending)
}

// redirectTop sends the bare /news/ path to /news/top, keeping whatever
// query string the caller supplied.
func (h *Handler) redirectTop(c *gin.Context) {
	target := "/news/top"
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}
	c.Redirect(http.StatusFound, target)
}

func (h *Handler) top(c *gin.Context) {
	q := HeadlinesQuery(c)

	// Last-resort absorber: even a bug below answers with articles.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("top handler panicked, serving error fallback", "panic", r)
			c.JSON(http.StatusOK, ComposeMock(CategoryFallback(q.Category, q.PageSize), SourceError))
		}
	}()

	articles, total, err := h.Fetcher.TopHeadlines(c.Request.Context(), q)
	if err != nil {
		slog.Warn("top-headlines upstream failed, serving fallback",
			"country", q.Country, "category", q.Category, "error", err)
		c.JSON(http.StatusOK, ComposeMock(CategoryFallback(q.Category, q.PageSize), SourceMock))
		return
	}

	c.JSON(http.StatusOK, Compose(Dedupe(articles), total, SourceGNews))
}

func (h *Handler) search(c *gin.Context) {
	q := SearchQuery(c)
	if q.Q == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "query parameter 'q' is required",
		})
		return
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("search handler panicked, serving error fallback", "panic", r)
			c.JSON(http.StatusOK, ComposeMock(SearchFallback(q.Q), SourceError))
		}
	}()

	articles, total, err := h.Fetcher.Search(c.Request.Context(), q)
	if err != nil {
		slog.Warn("search upstream failed, serving fallback", "q", q.Q, "error", err)
		c.JSON(http.StatusOK, ComposeSearchMock(SearchFallback(q.Q)))
		return
	}

	c.JSON(http.StatusOK, Compose(Dedupe(articles), total, SourceGNewsSearch))
}

func (h *Handler) trending(c *gin.Context) {
	count := parseInt(c.Query("topics"), len(trendingTopics))
	if count <= 0 || count > len(trendingTopics) {
		count = len(trendingTopics)
	}
	topics := trendingTopics[:count]
	country := defaultStr(c.Query("country"), DefaultCountry)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("trending handler panicked, serving error fallback", "panic", r)
			c.JSON(http.StatusOK, models.TrendingResponse{
				Status:   "ok",
				Trending: topics,
				Source:   SourceError,
			})
		}
	}()

	withArticles := h.fanOut(c.Request.Context(), topics, country)

	c.JSON(http.StatusOK, models.TrendingResponse{
		Status:               "ok",
		Trending:             topics,
		TrendingWithArticles: withArticles,
		Source:               SourceTrending,
	})
}

// fanOut searches the first few topics concurrently. A failed branch gets
// that topic's own generated fallback; one topic's failure never empties
// the others.
func (h *Handler) fanOut(ctx context.Context, topics []string, country string) []models.TopicArticles {
	n := fanOutTopics
	if n > len(topics) {
		n = len(topics)
	}

	out := make([]models.TopicArticles, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int, topic string) {
			defer wg.Done()
			out[i] = h.fetchTopic(ctx, topic, country)
		}(i, topics[i])
	}
	wg.Wait()

	return out
}

func (h *Handler) fetchTopic(ctx context.Context, topic, country string) (ta models.TopicArticles) {
	// A panicking branch degrades only itself.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("trending branch panicked", "topic", topic, "panic", r)
			articles := TopicFallback(topic, perTopicArticles)
			ta = models.TopicArticles{Topic: topic, Articles: articles, TotalResults: len(articles)}
		}
	}()

	q := Query{
		Q:        topic,
		Country:  country,
		Page:     1,
		PageSize: perTopicArticles,
		SortBy:   DefaultSortBy,
	}

	articles, total, err := h.Fetcher.Search(ctx, q)
	if err != nil {
		slog.Warn("trending topic search failed, serving fallback", "topic", topic, "error", err)
		fb := TopicFallback(topic, perTopicArticles)
		return models.TopicArticles{Topic: topic, Articles: fb, TotalResults: len(fb)}
	}

	deduped := Dedupe(articles)
	if total <= 0 {
		total = len(deduped)
	}
	return models.TopicArticles{Topic: topic, Articles: deduped, TotalResults: total}
}
