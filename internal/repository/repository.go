package repository

import (
	"context"
	"time"

	"newspulse/internal/models"
)

type ListArticlesParams struct {
	Limit  int
	Offset int
	// Symbol filters on the related_stocks jsonb list.
	Symbol *string
	// EventType keeps only articles that have at least one analysis with this
	// event type.
	EventType *string
}

type ListRecommendationsParams struct {
	Limit int
	// ActiveOnly keeps recommendations that are flagged active and expire
	// after Now.
	ActiveOnly    bool
	Now           time.Time
	Action        *string
	Symbol        *string
	MinConfidence *float64
}

// Repository is the persistence surface the aggregation and analysis core
// consumes. Upserts are idempotent on their natural keys (article URL, the
// pattern composite key); the core relies on that instead of locking.
type Repository interface {
	// UpsertArticleByURL inserts the article or, when the URL already exists,
	// updates title/content/updated_at in place. The model's ID is populated
	// either way.
	UpsertArticleByURL(ctx context.Context, item *models.Article) error
	GetArticleByID(ctx context.Context, id uint64) (*models.Article, error)
	ListArticles(ctx context.Context, params ListArticlesParams) ([]models.Article, error)
	CountArticles(ctx context.Context, params ListArticlesParams) (int64, error)

	InsertAnalysis(ctx context.Context, item *models.Analysis) error
	ListAnalysesByArticleID(ctx context.Context, articleID uint64) ([]models.Analysis, error)

	InsertRecommendation(ctx context.Context, item *models.Recommendation) error
	ListRecommendations(ctx context.Context, params ListRecommendationsParams) ([]models.Recommendation, error)
	ListTopRecommendations(ctx context.Context, limit int, now time.Time) ([]models.Recommendation, error)
	DeactivateExpiredRecommendations(ctx context.Context, now time.Time) (int64, error)

	// GetHistoricalPattern returns the most recently updated pattern for the
	// pair, or nil when none exists. Absence is not an error.
	GetHistoricalPattern(ctx context.Context, symbol, eventType string) (*models.HistoricalPattern, error)
	UpsertHistoricalPattern(ctx context.Context, item *models.HistoricalPattern) error
}
