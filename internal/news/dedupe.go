package news

import (
	"strings"

	"newshub/pkg/models"
)

// identityKey defines how we decide that two articles are "the same story".
// The lowercased URL wins when present; otherwise the lowercased title.
// An article carrying neither has no identity at all.
func identityKey(a models.Article) string {
	if u := strings.TrimSpace(a.URL); u != "" {
		return strings.ToLower(u)
	}
	return strings.ToLower(strings.TrimSpace(a.Title))
}

// Dedupe collapses duplicate articles into a canonical list: the first
// occurrence of each identity key is kept and later ones are dropped, with
// the relative order of survivors preserved. Articles with an empty key are
// passed through untouched — two articles with neither URL nor title are
// not duplicates of each other.
func Dedupe(in []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(in))
	out := make([]models.Article, 0, len(in))

	for _, a := range in {
		key := identityKey(a)
		if key == "" {
			out = append(out, a)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}
