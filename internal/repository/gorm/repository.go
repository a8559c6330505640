package gormrepository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newspulse/internal/models"
	"newspulse/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- articles ---------------------------------------------------------------

func (s *Store) UpsertArticleByURL(ctx context.Context, item *models.Article) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if strings.TrimSpace(item.URL) == "" {
		return errors.New("article url is empty")
	}
	return s.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "url"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title",
				"content",
				"updated_at",
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "id"}}},
	).Create(item).Error
}

func (s *Store) GetArticleByID(ctx context.Context, id uint64) (*models.Article, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Article
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) articlesQuery(ctx context.Context, params repository.ListArticlesParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Article{})
	if params.Symbol != nil && strings.TrimSpace(*params.Symbol) != "" {
		symbol := strings.ToUpper(strings.TrimSpace(*params.Symbol))
		raw, _ := json.Marshal([]string{symbol})
		query = query.Where("related_stocks @> ?::jsonb", string(raw))
	}
	if params.EventType != nil && strings.TrimSpace(*params.EventType) != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM ai_analysis aa WHERE aa.article_id = news_articles.id AND aa.event_type = ?)",
			strings.TrimSpace(*params.EventType),
		)
	}
	return query
}

func (s *Store) ListArticles(ctx context.Context, params repository.ListArticlesParams) ([]models.Article, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	limit := normalizeLimit(params.Limit, 50)
	offset := normalizeOffset(params.Offset)
	var items []models.Article
	err := s.articlesQuery(ctx, params).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountArticles(ctx context.Context, params repository.ListArticlesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := s.articlesQuery(ctx, params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// --- analyses ---------------------------------------------------------------

func (s *Store) InsertAnalysis(ctx context.Context, item *models.Analysis) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Omit("Article").Create(item).Error
}

func (s *Store) ListAnalysesByArticleID(ctx context.Context, articleID uint64) ([]models.Analysis, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Analysis
	err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("analyzed_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// --- recommendations --------------------------------------------------------

func (s *Store) InsertRecommendation(ctx context.Context, item *models.Recommendation) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListRecommendations(ctx context.Context, params repository.ListRecommendationsParams) ([]models.Recommendation, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.Recommendation{})
	if params.ActiveOnly {
		now := params.Now
		if now.IsZero() {
			now = time.Now().UTC()
		}
		query = query.Where("is_active = ?", true).Where("expires_at > ?", now)
	}
	if params.Action != nil && strings.TrimSpace(*params.Action) != "" {
		query = query.Where("action = ?", strings.ToUpper(strings.TrimSpace(*params.Action)))
	}
	if params.Symbol != nil && strings.TrimSpace(*params.Symbol) != "" {
		query = query.Where("stock_symbol = ?", strings.ToUpper(strings.TrimSpace(*params.Symbol)))
	}
	if params.MinConfidence != nil {
		query = query.Where("confidence >= ?", *params.MinConfidence)
	}
	limit := normalizeLimit(params.Limit, 50)
	var items []models.Recommendation
	err := query.
		Order("created_at DESC").
		Order("confidence DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListTopRecommendations(ctx context.Context, limit int, now time.Time) ([]models.Recommendation, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	limit = normalizeLimit(limit, 10)
	var items []models.Recommendation
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("expires_at > ?", now).
		Order("confidence DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeactivateExpiredRecommendations(ctx context.Context, now time.Time) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	res := s.db.WithContext(ctx).
		Model(&models.Recommendation{}).
		Where("is_active = ?", true).
		Where("expires_at <= ?", now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

// --- historical patterns ----------------------------------------------------

func (s *Store) GetHistoricalPattern(ctx context.Context, symbol, eventType string) (*models.HistoricalPattern, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.HistoricalPattern
	err := s.db.WithContext(ctx).
		Where("stock_symbol = ?", symbol).
		Where("event_type = ?", eventType).
		Order("last_updated DESC").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertHistoricalPattern(ctx context.Context, item *models.HistoricalPattern) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "stock_symbol"},
			{Name: "event_type"},
			{Name: "timeframe"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"avg_price_change",
			"median_price_change",
			"sample_size",
			"confidence",
			"data_points",
			"last_updated",
		}),
	}).Create(item).Error
}

// --- helpers ----------------------------------------------------------------

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
