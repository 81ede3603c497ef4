package news

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultCountry  = "in"
	DefaultCategory = "general"
	DefaultSortBy   = "publishedAt"

	DefaultHeadlinesSize = 6
	DefaultSearchSize    = 12
)

// Query is the normalized, defaulted parameter set for one news request.
// Beyond defaulting there is no validation: page/pageSize are not bounds
// checked and category is not checked against an allow-list; the upstream
// provider is the effective validator.
type Query struct {
	Country  string
	Category string
	Page     int
	PageSize int
	Q        string
	SortBy   string
}

// HeadlinesQuery normalizes parameters for /news/top.
func HeadlinesQuery(c *gin.Context) Query {
	return Query{
		Country:  defaultStr(c.Query("country"), DefaultCountry),
		Category: defaultStr(c.Query("category"), DefaultCategory),
		Page:     parseInt(c.Query("page"), 1),
		PageSize: pageSize(c, DefaultHeadlinesSize),
	}
}

// SearchQuery normalizes parameters for /news/search. The caller is
// responsible for rejecting an empty Q before fetching.
func SearchQuery(c *gin.Context) Query {
	return Query{
		Country:  c.Query("country"),
		Category: c.Query("category"),
		Page:     parseInt(c.Query("page"), 1),
		PageSize: pageSize(c, DefaultSearchSize),
		Q:        strings.TrimSpace(c.Query("q")),
		SortBy:   defaultStr(c.Query("sortBy"), DefaultSortBy),
	}
}

// pageSize reads "pageSize" first and falls back to "max" (the client sends
// either, depending on the page it is rendering).
func pageSize(c *gin.Context, def int) int {
	if s := c.Query("pageSize"); strings.TrimSpace(s) != "" {
		return parseInt(s, def)
	}
	return parseInt(c.Query("max"), def)
}

func defaultStr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
