package news

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"newshub/pkg/models"
)

type fakeFetcher struct {
	headlines []models.Article
	total     int
	err       error

	// searchFn lets trending tests answer per topic.
	searchFn func(q Query) ([]models.Article, int, error)
}

func (f *fakeFetcher) TopHeadlines(ctx context.Context, q Query) ([]models.Article, int, error) {
	return f.headlines, f.total, f.err
}

func (f *fakeFetcher) Search(ctx context.Context, q Query) ([]models.Article, int, error) {
	if f.searchFn != nil {
		return f.searchFn(q)
	}
	return f.headlines, f.total, f.err
}

func newTestRouter(f Fetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(f).RegisterRoutes(r.Group("/news"))
	return r
}

func TestTop_DedupesUpstream(t *testing.T) {
	// five upstream articles where #2 and #4 share a URL
	f := &fakeFetcher{
		headlines: []models.Article{
			art("https://e.com/1", "a1"),
			art("https://e.com/dup", "a2"),
			art("https://e.com/3", "a3"),
			art("https://e.com/dup", "a4"),
			art("https://e.com/5", "a5"),
		},
		total: 120,
	}
	r := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/top?country=in&category=technology&page=1&pageSize=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res models.Envelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "ok", res.Status)
	assert.Equal(t, SourceGNews, res.Source)
	assert.Equal(t, 120, res.TotalResults)
	assert.Equal(t, 4, len(res.Articles))
	assert.Equal(t, "a1", res.Articles[0].Title)
	assert.Equal(t, "a2", res.Articles[1].Title)
	assert.Equal(t, "a3", res.Articles[2].Title)
	assert.Equal(t, "a5", res.Articles[3].Title)
}

func TestTop_UpstreamFailureServesMockFallback(t *testing.T) {
	f := &fakeFetcher{err: errors.New("connection refused")}
	r := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/top?category=made-up-category&pageSize=4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res models.Envelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "ok", res.Status)
	assert.Equal(t, SourceMock, res.Source)
	assert.Equal(t, 4, len(res.Articles))
	// unknown category falls back to the general set
	general := CategoryFallback("general", 4)
	for i := range general {
		assert.Equal(t, general[i].Title, res.Articles[i].Title)
	}
	// inflated total keeps "load more" working
	assert.Equal(t, 40, res.TotalResults)
}

func TestTop_EmptyUpstreamTreatedAsFailure(t *testing.T) {
	f := &fakeFetcher{err: ErrNoArticles}
	r := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/top", nil)
	r.ServeHTTP(w, req)

	var res models.Envelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, SourceMock, res.Source)
	assert.NotEqual(t, 0, len(res.Articles))
}

func TestSearch_MissingQueryIs400(t *testing.T) {
	r := newTestRouter(&fakeFetcher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/search", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]any
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "error", res["status"])
	assert.NotEqual(t, nil, res["message"])
}

func TestSearch_UpstreamUnreachableServesMockSearch(t *testing.T) {
	f := &fakeFetcher{err: errors.New("dial tcp: no route to host")}
	r := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/search?q=bitcoin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res models.Envelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "ok", res.Status)
	assert.Equal(t, SourceMockSearch, res.Source)
	assert.NotEqual(t, 0, len(res.Articles))
	if !strings.Contains(res.Articles[0].Title, "bitcoin") {
		t.Fatalf("expected first title to contain %q, got %q", "bitcoin", res.Articles[0].Title)
	}
}

func TestSearch_SuccessTaggedGNewsSearch(t *testing.T) {
	f := &fakeFetcher{
		headlines: []models.Article{art("https://e.com/btc", "bitcoin climbs")},
		total:     7,
	}
	r := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/search?q=bitcoin", nil)
	r.ServeHTTP(w, req)

	var res models.Envelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, SourceGNewsSearch, res.Source)
	assert.Equal(t, 7, res.TotalResults)
}

func TestTrending_FanOutIsolation(t *testing.T) {
	// first topic succeeds upstream, the other branches fail
	okTopic := trendingTopics[0]
	f := &fakeFetcher{
		searchFn: func(q Query) ([]models.Article, int, error) {
			if q.Q == okTopic {
				return []models.Article{art("https://e.com/t", okTopic+" wins big")}, 9, nil
			}
			return nil, 0, errors.New("upstream down")
		},
	}
	r := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/trending?topics=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res models.TrendingResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "ok", res.Status)
	assert.Equal(t, SourceTrending, res.Source)
	assert.Equal(t, 3, len(res.Trending))
	assert.Equal(t, 3, len(res.TrendingWithArticles))

	// every branch carries articles; failed branches carry their own fallback
	for i, branch := range res.TrendingWithArticles {
		assert.Equal(t, trendingTopics[i], branch.Topic)
		assert.NotEqual(t, 0, len(branch.Articles))
	}
	assert.Equal(t, okTopic+" wins big", res.TrendingWithArticles[0].Articles[0].Title)
	if !strings.HasPrefix(res.TrendingWithArticles[1].Articles[0].Title, trendingTopics[1]+": ") {
		t.Fatalf("expected fallback title prefixed with topic, got %q",
			res.TrendingWithArticles[1].Articles[0].Title)
	}
}

func TestTrending_DefaultTopicCount(t *testing.T) {
	f := &fakeFetcher{err: errors.New("down")}
	r := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/trending", nil)
	r.ServeHTTP(w, req)

	var res models.TrendingResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, len(trendingTopics), len(res.Trending))
	assert.Equal(t, fanOutTopics, len(res.TrendingWithArticles))
}

func TestBareNewsRedirectsToTop(t *testing.T) {
	r := newTestRouter(&fakeFetcher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/?category=sports&page=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/news/top?category=sports&page=2", w.Header().Get("Location"))
}
