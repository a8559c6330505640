package analysis

import (
	"context"
	"errors"
	"time"

	"newspulse/internal/models"
	"newspulse/internal/repository"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
// Analysis service tests exercise the analysis, recommendation and pattern
// paths.
type stubRepo struct {
	articles        map[uint64]models.Article
	analyses        []models.Analysis
	recommendations []models.Recommendation
	patterns        map[string]models.HistoricalPattern

	nextAnalysisID uint64
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		articles: map[uint64]models.Article{},
		patterns: map[string]models.HistoricalPattern{},
	}
}

func patternKey(symbol, eventType string) string { return symbol + "|" + eventType }

func (s *stubRepo) UpsertArticleByURL(ctx context.Context, item *models.Article) error { return nil }

func (s *stubRepo) GetArticleByID(ctx context.Context, id uint64) (*models.Article, error) {
	a, ok := s.articles[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &a, nil
}

func (s *stubRepo) ListArticles(ctx context.Context, params repository.ListArticlesParams) ([]models.Article, error) {
	return nil, nil
}
func (s *stubRepo) CountArticles(ctx context.Context, params repository.ListArticlesParams) (int64, error) {
	return 0, nil
}

func (s *stubRepo) InsertAnalysis(ctx context.Context, item *models.Analysis) error {
	s.nextAnalysisID++
	item.ID = s.nextAnalysisID
	if item.AnalyzedAt.IsZero() {
		item.AnalyzedAt = time.Now()
	}
	s.analyses = append(s.analyses, *item)
	return nil
}

func (s *stubRepo) ListAnalysesByArticleID(ctx context.Context, articleID uint64) ([]models.Analysis, error) {
	var out []models.Analysis
	for _, a := range s.analyses {
		if a.ArticleID == articleID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) InsertRecommendation(ctx context.Context, item *models.Recommendation) error {
	item.ID = uint64(len(s.recommendations) + 1)
	s.recommendations = append(s.recommendations, *item)
	return nil
}

func (s *stubRepo) ListRecommendations(ctx context.Context, params repository.ListRecommendationsParams) ([]models.Recommendation, error) {
	return s.recommendations, nil
}
func (s *stubRepo) ListTopRecommendations(ctx context.Context, limit int, now time.Time) ([]models.Recommendation, error) {
	return nil, nil
}
func (s *stubRepo) DeactivateExpiredRecommendations(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func (s *stubRepo) GetHistoricalPattern(ctx context.Context, symbol, eventType string) (*models.HistoricalPattern, error) {
	p, ok := s.patterns[patternKey(symbol, eventType)]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *stubRepo) UpsertHistoricalPattern(ctx context.Context, item *models.HistoricalPattern) error {
	s.patterns[patternKey(item.StockSymbol, item.EventType)] = *item
	return nil
}
