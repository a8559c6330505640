package aggregator

import (
	"context"
	"errors"
	"sync"
	"time"

	"newspulse/internal/models"
	"newspulse/internal/repository"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
// Only the article path is exercised by aggregator tests.
type stubRepo struct {
	mu       sync.Mutex
	articles map[string]models.Article
	nextID   uint64

	failURL string
}

func newStubRepo() *stubRepo {
	return &stubRepo{articles: map[string]models.Article{}}
}

func (s *stubRepo) UpsertArticleByURL(ctx context.Context, item *models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failURL != "" && item.URL == s.failURL {
		return errors.New("stub upsert failure")
	}
	if existing, ok := s.articles[item.URL]; ok {
		item.ID = existing.ID
		existing.Title = item.Title
		existing.Content = item.Content
		s.articles[item.URL] = existing
		return nil
	}
	s.nextID++
	item.ID = s.nextID
	s.articles[item.URL] = *item
	return nil
}

func (s *stubRepo) GetArticleByID(ctx context.Context, id uint64) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.articles {
		if a.ID == id {
			copied := a
			return &copied, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubRepo) ListArticles(ctx context.Context, params repository.ListArticlesParams) ([]models.Article, error) {
	return nil, nil
}
func (s *stubRepo) CountArticles(ctx context.Context, params repository.ListArticlesParams) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.articles)), nil
}
func (s *stubRepo) InsertAnalysis(ctx context.Context, item *models.Analysis) error { return nil }
func (s *stubRepo) ListAnalysesByArticleID(ctx context.Context, articleID uint64) ([]models.Analysis, error) {
	return nil, nil
}
func (s *stubRepo) InsertRecommendation(ctx context.Context, item *models.Recommendation) error {
	return nil
}
func (s *stubRepo) ListRecommendations(ctx context.Context, params repository.ListRecommendationsParams) ([]models.Recommendation, error) {
	return nil, nil
}
func (s *stubRepo) ListTopRecommendations(ctx context.Context, limit int, now time.Time) ([]models.Recommendation, error) {
	return nil, nil
}
func (s *stubRepo) DeactivateExpiredRecommendations(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
func (s *stubRepo) GetHistoricalPattern(ctx context.Context, symbol, eventType string) (*models.HistoricalPattern, error) {
	return nil, nil
}
func (s *stubRepo) UpsertHistoricalPattern(ctx context.Context, item *models.HistoricalPattern) error {
	return nil
}
