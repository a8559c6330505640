package aggregator

import (
	"strings"

	"newspulse/internal/models"
)

// impactKeywords gate which articles are worth an AI analysis call. An article
// is high impact when its title or content mentions any of these, case
// insensitively.
var impactKeywords = []string{
	"partnership", "acquisition", "merger", "deal", "invest",
	"lawsuit", "legal", "fine", "settlement",
	"earnings", "revenue", "profit", "loss",
	"product launch", "release", "announce",
	"ceo", "executive", "resignation", "appointed",
	"breakthrough", "innovation", "patent",
	"recall", "investigation", "scandal",
}

// HighImpact reports whether the article is likely to move a price.
func HighImpact(a *models.Article) bool {
	text := strings.ToLower(a.Title + " " + a.Content)
	for _, kw := range impactKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// FilterHighImpact keeps only articles that pass HighImpact, preserving order.
func FilterHighImpact(articles []models.Article) []models.Article {
	out := make([]models.Article, 0, len(articles))
	for i := range articles {
		if HighImpact(&articles[i]) {
			out = append(out, articles[i])
		}
	}
	return out
}
