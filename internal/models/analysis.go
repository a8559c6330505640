package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event types the analyst model may assign to an article.
const (
	EventProductLaunch   = "product-launch"
	EventAcquisition     = "acquisition"
	EventLegalIssues     = "legal-issues"
	EventEarnings        = "earnings"
	EventPartnership     = "partnership"
	EventExecutiveChange = "executive-change"
	EventMarketExpansion = "market-expansion"
	EventOther           = "other"
)

// Analysis is one AI assessment of one article. Re-analysis appends a new row;
// history is never mutated.
type Analysis struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ArticleID uint64  `gorm:"not null;index" json:"article_id"`
	Article   Article `json:"-"`

	EventType       string  `gorm:"type:varchar(100);index" json:"event_type"`
	SentimentScore  float64 `gorm:"not null" json:"sentiment_score"`
	ConfidenceScore float64 `gorm:"not null" json:"confidence_score"`

	// Recommendation duplicates the first affected stock's action (HOLD when
	// none). Convenience only; the recommendations table is the source of truth.
	Recommendation string `gorm:"type:varchar(20)" json:"recommendation"`

	Rationale         string         `gorm:"type:text" json:"rationale"`
	RiskFactors       datatypes.JSON `gorm:"type:jsonb" json:"risk_factors"`
	HistoricalContext string         `gorm:"type:text" json:"historical_context"`
	KeyInsights       datatypes.JSON `gorm:"type:jsonb" json:"key_insights"`

	AnalyzedAt   time.Time `gorm:"type:timestamptz;autoCreateTime" json:"analyzed_at"`
	ModelVersion string    `gorm:"type:varchar(50)" json:"model_version"`
}

func (Analysis) TableName() string {
	return "ai_analysis"
}
