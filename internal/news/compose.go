package news

import "newshub/pkg/models"

// Provenance tags. The client cannot tell real data from generated data by
// status (both are "ok"); the source tag is the only honest signal.
const (
	SourceGNews       = "gnews"
	SourceGNewsSearch = "gnews-search"
	SourceMock        = "mock-fallback"
	SourceMockSearch  = "mock-search"
	SourceError       = "error-fallback"
	SourceTrending    = "generated-trending"
)

// mockTotalFactor inflates totalResults on the category-fallback path so
// the client's "load more" pagination still has somewhere to go. Real and
// search-fallback paths report true counts.
const mockTotalFactor = 10

// Compose builds the uniform ok envelope for the real path. The upstream
// total wins when it reported one; otherwise the deduped count stands in.
func Compose(articles []models.Article, upstreamTotal int, source string) models.Envelope {
	total := upstreamTotal
	if total <= 0 {
		total = len(articles)
	}
	return models.Envelope{
		Status:       "ok",
		TotalResults: total,
		Articles:     articles,
		Source:       source,
	}
}

// ComposeMock builds the envelope for category and error fallback content.
func ComposeMock(articles []models.Article, source string) models.Envelope {
	return models.Envelope{
		Status:       "ok",
		TotalResults: len(articles) * mockTotalFactor,
		Articles:     articles,
		Source:       source,
	}
}

// ComposeSearchMock builds the envelope for synthesized search results.
func ComposeSearchMock(articles []models.Article) models.Envelope {
	return models.Envelope{
		Status:       "ok",
		TotalResults: len(articles),
		Articles:     articles,
		Source:       SourceMockSearch,
	}
}
