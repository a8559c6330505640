package aggregator

import "newspulse/internal/models"

// Deduplicate collapses the merged provider output on URL. The first article
// seen for a URL wins; later duplicates are dropped, so provider ordering in
// the merged slice decides which copy survives. Articles without a URL cannot
// be keyed and are dropped outright. Input order is preserved.
func Deduplicate(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.URL == "" {
			continue
		}
		if _, ok := seen[a.URL]; ok {
			continue
		}
		seen[a.URL] = struct{}{}
		out = append(out, a)
	}
	return out
}
